package storage

import (
	"sync"

	"ringside/models"
)

// MatchStore owns the current match document. The cleared state is persisted
// as an empty object so the front end sees a match without wrestlers rather
// than a missing file.
type MatchStore struct {
	mu    sync.RWMutex
	path  string
	match models.Match
}

// NewMatchStore creates a match store backed by the given file
func NewMatchStore(path string) *MatchStore {
	s := &MatchStore{path: path}
	loadDocument(path, &s.match)
	return s
}

// Current returns the open match, or nil when no match exists
func (s *MatchStore) Current() *models.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.match.Wrestlers) == 0 {
		return nil
	}
	m := models.Match{ID: s.match.ID, Wrestlers: append([]string(nil), s.match.Wrestlers...)}
	return &m
}

// Put replaces the current match and persists the document
func (s *MatchStore) Put(m *models.Match) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.match = *m
	saveDocument(s.path, s.match)
}

// Clear removes the current match and persists the cleared document
func (s *MatchStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.match = models.Match{}
	saveDocument(s.path, s.match)
}
