package session

import (
	"context"
	"sync"
	"time"
)

// memoryStore implements Store with an in-memory value. Non-durable; used in
// tests and for ephemeral runs.
type memoryStore struct {
	mu      sync.RWMutex
	current *Session
}

// Restore implements Store.
func (s *memoryStore) Restore(ctx context.Context) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, nil
	}
	copied := *s.current
	return &copied, nil
}

// Save implements Store.
func (s *memoryStore) Save(ctx context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = now
	}
	sess.UpdatedAt = now

	copied := *sess
	s.current = &copied
	return nil
}

// Clear implements Store.
func (s *memoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	return nil
}

// Close implements Store.
func (s *memoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	return nil
}
