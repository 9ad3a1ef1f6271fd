package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ringside/events"
	"ringside/models"
)

func TestBalanceService_GetBalance_InitializesNewUser(t *testing.T) {
	mockStore := new(MockBalanceStore)
	mockPublisher := new(MockEventPublisher)
	svc := NewBalanceService(&sync.Mutex{}, mockStore, mockPublisher)

	mockStore.On("Get", "user1").Return(int64(0), false).Once()
	mockStore.On("Set", "user1", InitialCoins).Once()
	mockPublisher.On("Publish", mock.MatchedBy(func(e events.Event) bool {
		ev, ok := e.(events.BalanceChangeEvent)
		return ok && ev.Reason == events.ReasonInitial && ev.NewBalance == InitialCoins
	})).Once()

	balance := svc.GetBalance("user1")

	assert.Equal(t, InitialCoins, balance)
	mockStore.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestBalanceService_GetBalance_ExistingUserUntouched(t *testing.T) {
	mockStore := new(MockBalanceStore)
	svc := NewBalanceService(&sync.Mutex{}, mockStore, nopPublisher{})

	mockStore.On("Get", "user1").Return(int64(250), true)

	assert.Equal(t, int64(250), svc.GetBalance("user1"))
	mockStore.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestBalanceService_Adjust_ClampsToZero(t *testing.T) {
	mockStore := new(MockBalanceStore)
	svc := NewBalanceService(&sync.Mutex{}, mockStore, nopPublisher{})

	mockStore.On("Get", "user1").Return(int64(100), true)
	mockStore.On("Set", "user1", int64(0)).Once()

	newBalance := svc.Adjust("user1", -500, events.ReasonBet)

	assert.Equal(t, int64(0), newBalance)
	mockStore.AssertExpectations(t)
}

func TestBalanceService_Adjust_Credits(t *testing.T) {
	mockStore := new(MockBalanceStore)
	svc := NewBalanceService(&sync.Mutex{}, mockStore, nopPublisher{})

	mockStore.On("Get", "user1").Return(int64(100), true)
	mockStore.On("Set", "user1", int64(400)).Once()

	assert.Equal(t, int64(400), svc.Adjust("user1", 300, events.ReasonPayout))
	mockStore.AssertExpectations(t)
}

func TestBalanceService_ValidateWager(t *testing.T) {
	mockStore := new(MockBalanceStore)
	svc := NewBalanceService(&sync.Mutex{}, mockStore, nopPublisher{})

	mockStore.On("Get", "user1").Return(int64(100), true)

	assert.True(t, svc.ValidateWager("user1", 100))
	assert.True(t, svc.ValidateWager("user1", 1))
	assert.False(t, svc.ValidateWager("user1", 101))
	assert.False(t, svc.ValidateWager("user1", 0))
	assert.False(t, svc.ValidateWager("user1", -5))
}

func TestBalanceService_RankedBalances(t *testing.T) {
	mockStore := new(MockBalanceStore)
	svc := NewBalanceService(&sync.Mutex{}, mockStore, nopPublisher{})

	mockStore.On("All").Return(map[string]int64{
		"a": 100,
		"b": 900,
		"c": 100,
		"d": 500,
	})

	ranked := svc.RankedBalances()

	assert.Equal(t, []models.RankedBalance{
		{UserID: "b", Balance: 900},
		{UserID: "d", Balance: 500},
		{UserID: "a", Balance: 100},
		{UserID: "c", Balance: 100},
	}, ranked)
}

func TestBalanceService_Grant_RejectsNonPositive(t *testing.T) {
	mockStore := new(MockBalanceStore)
	svc := NewBalanceService(&sync.Mutex{}, mockStore, nopPublisher{})

	_, err := svc.Grant("user1", 0)
	assert.ErrorIs(t, err, ErrInvalidWager)

	_, err = svc.Grant("user1", -10)
	assert.ErrorIs(t, err, ErrInvalidWager)

	mockStore.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestBalanceService_Donate(t *testing.T) {
	t.Run("rejects non-positive amount", func(t *testing.T) {
		svc := NewBalanceService(&sync.Mutex{}, new(MockBalanceStore), nopPublisher{})
		_, err := svc.Donate("a", "b", 0)
		assert.ErrorIs(t, err, ErrInvalidWager)
	})

	t.Run("rejects self donation", func(t *testing.T) {
		svc := NewBalanceService(&sync.Mutex{}, new(MockBalanceStore), nopPublisher{})
		_, err := svc.Donate("a", "a", 50)
		assert.ErrorIs(t, err, ErrInvalidWager)
	})

	t.Run("rejects unaffordable amount", func(t *testing.T) {
		mockStore := new(MockBalanceStore)
		svc := NewBalanceService(&sync.Mutex{}, mockStore, nopPublisher{})
		mockStore.On("Get", "a").Return(int64(40), true)

		_, err := svc.Donate("a", "b", 50)

		assert.ErrorIs(t, err, ErrInvalidWager)
		mockStore.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
	})

	t.Run("moves coins between users", func(t *testing.T) {
		mockStore := new(MockBalanceStore)
		svc := NewBalanceService(&sync.Mutex{}, mockStore, nopPublisher{})
		mockStore.On("Get", "a").Return(int64(200), true)
		mockStore.On("Get", "b").Return(int64(100), true)
		mockStore.On("Set", "a", int64(150)).Once()
		mockStore.On("Set", "b", int64(150)).Once()

		newBalance, err := svc.Donate("a", "b", 50)

		assert.NoError(t, err)
		assert.Equal(t, int64(150), newBalance)
		mockStore.AssertExpectations(t)
	})
}
