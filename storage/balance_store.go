package storage

import "sync"

// BalanceStore owns the coins document, a map of user ID to balance.
// Loaded once on construction, saved on every mutation.
type BalanceStore struct {
	mu    sync.RWMutex
	path  string
	coins map[string]int64
}

// NewBalanceStore creates a balance store backed by the given file
func NewBalanceStore(path string) *BalanceStore {
	s := &BalanceStore{
		path:  path,
		coins: make(map[string]int64),
	}
	loadDocument(path, &s.coins)
	return s
}

// Get returns a user's balance and whether the user has been seen before
func (s *BalanceStore) Get(userID string) (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	balance, ok := s.coins[userID]
	return balance, ok
}

// Set replaces a user's balance and persists the document
func (s *BalanceStore) Set(userID string, balance int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coins[userID] = balance
	saveDocument(s.path, s.coins)
}

// All returns a copy of every known balance
func (s *BalanceStore) All() map[string]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]int64, len(s.coins))
	for userID, balance := range s.coins {
		out[userID] = balance
	}
	return out
}
