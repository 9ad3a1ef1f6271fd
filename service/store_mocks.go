package service

import (
	"github.com/stretchr/testify/mock"

	"ringside/events"
	"ringside/models"
)

// MockBalanceStore is a mock implementation of BalanceStore
type MockBalanceStore struct {
	mock.Mock
}

func (m *MockBalanceStore) Get(userID string) (int64, bool) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Bool(1)
}

func (m *MockBalanceStore) Set(userID string, balance int64) {
	m.Called(userID, balance)
}

func (m *MockBalanceStore) All() map[string]int64 {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[string]int64)
}

// MockMatchStore is a mock implementation of MatchStore
type MockMatchStore struct {
	mock.Mock
}

func (m *MockMatchStore) Current() *models.Match {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*models.Match)
}

func (m *MockMatchStore) Put(match *models.Match) {
	m.Called(match)
}

func (m *MockMatchStore) Clear() {
	m.Called()
}

// MockBetStore is a mock implementation of BetStore
type MockBetStore struct {
	mock.Mock
}

func (m *MockBetStore) Get(userID string) (models.Bet, bool) {
	args := m.Called(userID)
	return args.Get(0).(models.Bet), args.Bool(1)
}

func (m *MockBetStore) Put(userID string, bet models.Bet) {
	m.Called(userID, bet)
}

func (m *MockBetStore) All() map[string]models.Bet {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[string]models.Bet)
}

func (m *MockBetStore) Clear() {
	m.Called()
}

// MockHistoryStore is a mock implementation of HistoryStore
type MockHistoryStore struct {
	mock.Mock
}

func (m *MockHistoryStore) Append(userID string, rec models.HistoryRecord) {
	m.Called(userID, rec)
}

func (m *MockHistoryStore) ForUser(userID string) []models.HistoryRecord {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.HistoryRecord)
}

func (m *MockHistoryStore) FinalizeLast(userID string, result string) {
	m.Called(userID, result)
}

// MockStateStore is a mock implementation of StateStore
type MockStateStore struct {
	mock.Mock
}

func (m *MockStateStore) IsOpen() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockStateStore) SetOpen(open bool) {
	m.Called(open)
}

// MockBalanceService is a mock implementation of BalanceService
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) GetBalance(userID string) int64 {
	args := m.Called(userID)
	return args.Get(0).(int64)
}

func (m *MockBalanceService) Adjust(userID string, delta int64, reason string) int64 {
	args := m.Called(userID, delta, reason)
	return args.Get(0).(int64)
}

func (m *MockBalanceService) ValidateWager(userID string, amount int64) bool {
	args := m.Called(userID, amount)
	return args.Bool(0)
}

func (m *MockBalanceService) RankedBalances() []models.RankedBalance {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.RankedBalance)
}

func (m *MockBalanceService) Grant(userID string, amount int64) (int64, error) {
	args := m.Called(userID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBalanceService) Donate(fromID, toID string, amount int64) (int64, error) {
	args := m.Called(fromID, toID, amount)
	return args.Get(0).(int64), args.Error(1)
}

// MockHistoryService is a mock implementation of HistoryService
type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) Append(userID string, rec models.HistoryRecord) {
	m.Called(userID, rec)
}

func (m *MockHistoryService) Recent(userID string, limit int) []models.HistoryRecord {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.HistoryRecord)
}

func (m *MockHistoryService) Finalize(userID string, result string) {
	m.Called(userID, result)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) {
	m.Called(event)
}

// nopPublisher is an EventPublisher that drops everything, for tests that do
// not care about events
type nopPublisher struct{}

func (nopPublisher) Publish(events.Event) {}
