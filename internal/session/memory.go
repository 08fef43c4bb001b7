package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps sessions in process memory. Used in tests and when
// no redis address is configured; sessions are lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]int64)}
}

func (s *MemoryStore) Create(_ context.Context, userID int64) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = userID
	s.mu.Unlock()
	return token, nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (int64, error) {
	s.mu.RLock()
	userID, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return 0, ErrNoSession
	}
	return userID, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}
