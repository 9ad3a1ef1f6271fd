package storage

import (
	"sync"

	"ringside/models"
)

// HistoryStore owns the bet history document, an append-only list of records
// per user. Raw storage is unbounded; callers bound what they surface.
type HistoryStore struct {
	mu      sync.RWMutex
	path    string
	history map[string][]models.HistoryRecord
}

// NewHistoryStore creates a history store backed by the given file
func NewHistoryStore(path string) *HistoryStore {
	s := &HistoryStore{
		path:    path,
		history: make(map[string][]models.HistoryRecord),
	}
	loadDocument(path, &s.history)
	return s
}

// Append pushes a record onto a user's history and persists the document
func (s *HistoryStore) Append(userID string, rec models.HistoryRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history[userID] = append(s.history[userID], rec)
	saveDocument(s.path, s.history)
}

// ForUser returns a copy of a user's full history, oldest first
func (s *HistoryStore) ForUser(userID string) []models.HistoryRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.HistoryRecord(nil), s.history[userID]...)
}

// FinalizeLast sets the result text on a user's most recent record. A user
// with no history is a no-op; resolution must never fail on a missing record.
func (s *HistoryStore) FinalizeLast(userID string, result string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.history[userID]
	if len(records) == 0 {
		return
	}
	records[len(records)-1].Result = result
	saveDocument(s.path, s.history)
}
