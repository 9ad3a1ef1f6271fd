package service

import "ringside/models"

type historyService struct {
	history HistoryStore
}

// NewHistoryService creates a new history service
func NewHistoryService(history HistoryStore) HistoryService {
	return &historyService{history: history}
}

// Append pushes a record onto a user's history
func (s *historyService) Append(userID string, rec models.HistoryRecord) {
	s.history.Append(userID, rec)
}

// Recent returns up to limit records, most recent first
func (s *historyService) Recent(userID string, limit int) []models.HistoryRecord {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	all := s.history.ForUser(userID)
	if len(all) > limit {
		all = all[len(all)-limit:]
	}
	// reverse so the newest record comes first
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	return all
}

// Finalize replaces the pending result on a user's latest record
func (s *historyService) Finalize(userID string, result string) {
	s.history.FinalizeLast(userID, result)
}
