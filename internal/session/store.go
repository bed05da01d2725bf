// Package session keeps per-user navigation state for the process lifetime.
package session

import (
	"sync"

	"coursefiles/internal/domain"
)

// Store maps user IDs to their sessions. Sessions are created on first use
// and never removed; a restart simply starts everyone over. A session is
// only ever mutated by its own user's updates, the store lock protects the
// map itself against concurrent users.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*domain.Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[int64]*domain.Session)}
}

// Get returns the user's session, creating one if this is the first contact.
func (s *Store) Get(userID int64) *domain.Session {
	s.mu.RLock()
	sess, ok := s.sessions[userID]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[userID]; ok {
		return sess
	}
	sess = &domain.Session{}
	s.sessions[userID] = sess
	return sess
}

// Len reports how many sessions exist.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
