package storage

import (
	"sync"

	"ringside/models"
)

// maxMemoriesPerUser bounds how many AI interactions are remembered per user
const maxMemoriesPerUser = 10

// MemoryStore owns the AI conversation memories document
type MemoryStore struct {
	mu       sync.RWMutex
	path     string
	memories map[string][]models.Memory
}

// NewMemoryStore creates a memory store backed by the given file
func NewMemoryStore(path string) *MemoryStore {
	s := &MemoryStore{
		path:     path,
		memories: make(map[string][]models.Memory),
	}
	loadDocument(path, &s.memories)
	return s
}

// Add appends a memory for a user, dropping the oldest beyond the cap, and
// persists the document
func (s *MemoryStore) Add(userID string, mem models.Memory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := append(s.memories[userID], mem)
	if len(entries) > maxMemoriesPerUser {
		entries = entries[len(entries)-maxMemoriesPerUser:]
	}
	s.memories[userID] = entries
	saveDocument(s.path, s.memories)
}

// ForUser returns a copy of a user's remembered interactions, oldest first
func (s *MemoryStore) ForUser(userID string) []models.Memory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Memory(nil), s.memories[userID]...)
}
