package storage

import "sync"

type bettingState struct {
	IsBettingOpen bool `json:"isBettingOpen"`
}

// StateStore owns the betting-open flag document
type StateStore struct {
	mu    sync.RWMutex
	path  string
	state bettingState
}

// NewStateStore creates a state store backed by the given file. A missing
// file initializes to closed.
func NewStateStore(path string) *StateStore {
	s := &StateStore{path: path}
	loadDocument(path, &s.state)
	return s
}

// IsOpen reports whether betting is currently open
func (s *StateStore) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsBettingOpen
}

// SetOpen sets the betting-open flag and persists the document
func (s *StateStore) SetOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsBettingOpen = open
	saveDocument(s.path, s.state)
}
