package service

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ringside/events"
	"ringside/models"
	"ringside/storage"
)

// bettingFixture wires the real services over file-backed stores in a temp
// directory, the same shape cmd/run.go builds in production.
type bettingFixture struct {
	dir      string
	balances BalanceService
	matches  MatchService
	bets     BetService
	history  HistoryService
	payouts  PayoutService
	betStore *storage.BetStore
	state    *storage.StateStore
}

func newBettingFixture(t *testing.T) *bettingFixture {
	dir := t.TempDir()

	balanceStore := storage.NewBalanceStore(filepath.Join(dir, "coins.json"))
	matchStore := storage.NewMatchStore(filepath.Join(dir, "current_match.json"))
	betStore := storage.NewBetStore(filepath.Join(dir, "current_bets.json"))
	historyStore := storage.NewHistoryStore(filepath.Join(dir, "bet_history.json"))
	stateStore := storage.NewStateStore(filepath.Join(dir, "betting_state.json"))

	bus := events.NewBus()
	mu := &sync.Mutex{}

	balances := NewBalanceService(mu, balanceStore, bus)
	history := NewHistoryService(historyStore)
	matches := NewMatchService(mu, matchStore, betStore, stateStore, bus)
	bets := NewBetService(mu, stateStore, matchStore, betStore, balances, history, bus)
	payouts := NewPayoutService(mu, matchStore, betStore, stateStore, balances, history, bus)

	return &bettingFixture{
		dir:      dir,
		balances: balances,
		matches:  matches,
		bets:     bets,
		history:  history,
		payouts:  payouts,
		betStore: betStore,
		state:    stateStore,
	}
}

func TestBettingRound_WinnerNetsStakeTimesMultiplierMinusStake(t *testing.T) {
	f := newBettingFixture(t)

	_, err := f.matches.Start([]string{"A", "B"})
	require.NoError(t, err)

	before := f.balances.GetBalance("user1")
	_, err = f.bets.Place("user1", 1, 100)
	require.NoError(t, err)

	result, err := f.payouts.Resolve("A")
	require.NoError(t, err)

	// 100 * 2 paid out, 100 staked: net +100
	assert.Equal(t, 2, result.PayoutMultiplier)
	assert.Equal(t, before+100, f.balances.GetBalance("user1"))

	recent := f.history.Recent("user1", DefaultHistoryLimit)
	require.Len(t, recent, 1)
	assert.Equal(t, "Won 200 coins", recent[0].Result)
}

func TestBettingRound_LoserNetsMinusStake(t *testing.T) {
	f := newBettingFixture(t)

	_, err := f.matches.Start([]string{"A", "B"})
	require.NoError(t, err)

	before := f.balances.GetBalance("user1")
	_, err = f.bets.Place("user1", 1, 100)
	require.NoError(t, err)

	_, err = f.payouts.Resolve("B")
	require.NoError(t, err)

	assert.Equal(t, before-100, f.balances.GetBalance("user1"))

	recent := f.history.Recent("user1", DefaultHistoryLimit)
	require.Len(t, recent, 1)
	assert.Equal(t, "Lost 100 coins", recent[0].Result)
}

func TestBettingRound_CoinConservation(t *testing.T) {
	f := newBettingFixture(t)

	_, err := f.matches.Start([]string{"A", "B", "C"})
	require.NoError(t, err)

	stakes := map[string]struct {
		choice int
		amount int64
	}{
		"u1": {1, 100},
		"u2": {2, 250},
		"u3": {2, 75},
		"u4": {3, 500},
	}

	before := make(map[string]int64)
	var totalStaked int64
	for userID, s := range stakes {
		before[userID] = f.balances.GetBalance(userID)
		_, err := f.bets.Place(userID, s.choice, s.amount)
		require.NoError(t, err)
		totalStaked += s.amount
	}

	result, err := f.payouts.Resolve("B")
	require.NoError(t, err)
	require.Equal(t, 3, result.PayoutMultiplier)

	var totalDelta int64
	for userID := range stakes {
		totalDelta += f.balances.GetBalance(userID) - before[userID]
	}

	// sum of deltas = winning stakes * multiplier - all stakes
	expected := (250+75)*3 - totalStaked
	assert.Equal(t, expected, totalDelta)
}

func TestBettingRound_ResolveClearsEverything(t *testing.T) {
	f := newBettingFixture(t)

	_, err := f.matches.Start([]string{"A", "B"})
	require.NoError(t, err)
	_, err = f.bets.Place("user1", 1, 50)
	require.NoError(t, err)

	_, err = f.payouts.Resolve("A")
	require.NoError(t, err)

	assert.Empty(t, f.betStore.All())
	state := f.matches.CurrentState()
	assert.False(t, state.IsBettingOpen)
	assert.Nil(t, state.Match)

	for _, rec := range f.history.Recent("user1", DefaultHistoryLimit) {
		assert.False(t, rec.IsPending())
	}
}

func TestBettingRound_PlaceAfterCloseIsRejected(t *testing.T) {
	f := newBettingFixture(t)

	_, err := f.matches.Start([]string{"A", "B"})
	require.NoError(t, err)
	require.NoError(t, f.matches.Close())

	before := f.balances.GetBalance("user1")
	_, err = f.bets.Place("user1", 1, 100)

	assert.ErrorIs(t, err, ErrBettingClosed)
	assert.Equal(t, before, f.balances.GetBalance("user1"))
	assert.Empty(t, f.betStore.All())
	assert.Empty(t, f.history.Recent("user1", DefaultHistoryLimit))
}

func TestBettingRound_RepeatPlaceOverwritesWithoutRefund(t *testing.T) {
	// a second placement replaces the stored bet and appends another pending
	// record, but the first stake stays debited
	f := newBettingFixture(t)

	_, err := f.matches.Start([]string{"A", "B"})
	require.NoError(t, err)

	before := f.balances.GetBalance("user1")
	_, err = f.bets.Place("user1", 1, 100)
	require.NoError(t, err)
	_, err = f.bets.Place("user1", 2, 50)
	require.NoError(t, err)

	assert.Equal(t, before-150, f.balances.GetBalance("user1"))

	bet, ok := f.betStore.Get("user1")
	require.True(t, ok)
	assert.Equal(t, models.Bet{Wrestler: "B", Amount: 50}, bet)

	recent := f.history.Recent("user1", DefaultHistoryLimit)
	assert.Len(t, recent, 2)
}

func TestBettingRound_StartDiscardsPriorBets(t *testing.T) {
	f := newBettingFixture(t)

	_, err := f.matches.Start([]string{"A", "B"})
	require.NoError(t, err)
	_, err = f.bets.Place("user1", 1, 100)
	require.NoError(t, err)

	// a restart abandons the previous round; stakes are not refunded
	_, err = f.matches.Start([]string{"C", "D"})
	require.NoError(t, err)

	assert.Empty(t, f.betStore.All())
	assert.True(t, f.state.IsOpen())
}

func TestBalances_InitializationPersistsAcrossRestarts(t *testing.T) {
	f := newBettingFixture(t)

	first := f.balances.GetBalance("user1")
	assert.Equal(t, InitialCoins, first)
	assert.Equal(t, first, f.balances.GetBalance("user1"))

	// a fresh store over the same file sees the persisted initialization
	reloaded := storage.NewBalanceStore(filepath.Join(f.dir, "coins.json"))
	balance, ok := reloaded.Get("user1")
	assert.True(t, ok)
	assert.Equal(t, InitialCoins, balance)
}
