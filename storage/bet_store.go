package storage

import (
	"sync"

	"ringside/models"
)

// BetStore owns the current bets document, one bet per user for the open
// match. A second Put by the same user overwrites the stored bet.
type BetStore struct {
	mu   sync.RWMutex
	path string
	bets map[string]models.Bet
}

// NewBetStore creates a bet store backed by the given file
func NewBetStore(path string) *BetStore {
	s := &BetStore{
		path: path,
		bets: make(map[string]models.Bet),
	}
	loadDocument(path, &s.bets)
	return s
}

// Get returns a user's bet on the open match, if any
func (s *BetStore) Get(userID string) (models.Bet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bet, ok := s.bets[userID]
	return bet, ok
}

// Put records or overwrites a user's bet and persists the document
func (s *BetStore) Put(userID string, bet models.Bet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bets[userID] = bet
	saveDocument(s.path, s.bets)
}

// All returns a copy of every outstanding bet keyed by user ID
func (s *BetStore) All() map[string]models.Bet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]models.Bet, len(s.bets))
	for userID, bet := range s.bets {
		out[userID] = bet
	}
	return out
}

// Clear removes every outstanding bet and persists the empty document
func (s *BetStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bets = make(map[string]models.Bet)
	saveDocument(s.path, s.bets)
}
