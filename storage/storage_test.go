package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ringside/models"
)

func TestBalanceStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coins.json")

	s := NewBalanceStore(path)
	_, ok := s.Get("user1")
	assert.False(t, ok)

	s.Set("user1", 500)
	s.Set("user2", 42)

	reloaded := NewBalanceStore(path)
	balance, ok := reloaded.Get("user1")
	assert.True(t, ok)
	assert.Equal(t, int64(500), balance)
	assert.Equal(t, map[string]int64{"user1": 500, "user2": 42}, reloaded.All())
}

func TestBalanceStore_CorruptFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coins.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewBalanceStore(path)
	_, ok := s.Get("user1")
	assert.False(t, ok)
}

func TestMatchStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "current_match.json")

	s := NewMatchStore(path)
	assert.Nil(t, s.Current())

	s.Put(&models.Match{ID: "m1", Wrestlers: []string{"A", "B"}})

	reloaded := NewMatchStore(path)
	match := reloaded.Current()
	require.NotNil(t, match)
	assert.Equal(t, "m1", match.ID)
	assert.Equal(t, []string{"A", "B"}, match.Wrestlers)
}

func TestMatchStore_ClearPersistsEmptyMatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "current_match.json")

	s := NewMatchStore(path)
	s.Put(&models.Match{ID: "m1", Wrestlers: []string{"A", "B"}})
	s.Clear()

	assert.Nil(t, s.Current())
	assert.Nil(t, NewMatchStore(path).Current())
}

func TestBetStore_RoundTripAndClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "current_bets.json")

	s := NewBetStore(path)
	s.Put("user1", models.Bet{Wrestler: "A", Amount: 100})
	s.Put("user1", models.Bet{Wrestler: "B", Amount: 50})

	bet, ok := NewBetStore(path).Get("user1")
	require.True(t, ok)
	assert.Equal(t, models.Bet{Wrestler: "B", Amount: 50}, bet)

	s.Clear()
	assert.Empty(t, s.All())
	assert.Empty(t, NewBetStore(path).All())
}

func TestHistoryStore_FinalizeLast(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bet_history.json")

	s := NewHistoryStore(path)
	s.Append("user1", models.HistoryRecord{Match: "A vs B", Result: models.HistoryResultPending})
	s.Append("user1", models.HistoryRecord{Match: "A vs B", Result: models.HistoryResultPending})
	s.FinalizeLast("user1", "Won 100 coins")

	records := NewHistoryStore(path).ForUser("user1")
	require.Len(t, records, 2)
	assert.Equal(t, models.HistoryResultPending, records[0].Result)
	assert.Equal(t, "Won 100 coins", records[1].Result)

	// no records for the user is a no-op, not a panic
	s.FinalizeLast("nobody", "Lost 10 coins")
	assert.Empty(t, s.ForUser("nobody"))
}

func TestStateStore_DefaultsClosed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "betting_state.json")

	s := NewStateStore(path)
	assert.False(t, s.IsOpen())

	s.SetOpen(true)
	assert.True(t, NewStateStore(path).IsOpen())
}

func TestMemoryStore_BoundsEntriesPerUser(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memories.json")

	s := NewMemoryStore(path)
	for i := 0; i < 15; i++ {
		s.Add("user1", models.Memory{Timestamp: int64(i), Content: "hello"})
	}

	memories := NewMemoryStore(path).ForUser("user1")
	require.Len(t, memories, maxMemoriesPerUser)
	assert.Equal(t, int64(5), memories[0].Timestamp)
	assert.Equal(t, int64(14), memories[len(memories)-1].Timestamp)
}
