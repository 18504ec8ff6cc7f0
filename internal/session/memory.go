package session

import (
	"sync"

	"rafflebot/internal/domain"
)

// MemoryStore is an in-memory Store implementation
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]*domain.Session
}

// NewMemoryStore creates an empty in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[int64]*domain.Session),
	}
}

// Get returns the session for a user if one exists
func (s *MemoryStore) Get(userID int64) (*domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[userID]
	return sess, ok
}

// Put stores or replaces the session for a user
func (s *MemoryStore) Put(userID int64, sess *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = sess
}

// Delete discards the session for a user
func (s *MemoryStore) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
