package session

import (
	"context"
	"sync"
	"time"

	"givegate/pkg/platform/sentinel"
)

// InMemoryStore is the development and test fallback when Redis is absent.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	now      func() time.Time
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

func (s *InMemoryStore) Save(_ context.Context, sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *InMemoryStore) Find(_ context.Context, id string) (Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return Session{}, sentinel.ErrNotFound
	}
	if sess.Expired(s.now()) {
		// Lazy expiry: drop on discovery.
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return Session{}, sentinel.ErrExpired
	}
	return sess, nil
}

func (s *InMemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
