package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-memory Store used in tests and when the service runs
// without a database. Safe for concurrent use; every call is atomic under a
// single mutex, matching the per-operation atomicity the Store contract
// requires.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
	}
}

func (s *MemoryStore) Insert(_ context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[sess.ID]; exists {
		return ErrDuplicateID
	}
	s.sessions[sess.ID] = *sess
	return nil
}

func (s *MemoryStore) GetByID(_ context.Context, id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &sess, nil
}

func (s *MemoryStore) ListByStatus(_ context.Context, status Status) ([]Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Session
	for _, sess := range s.sessions {
		if sess.Status == status {
			out = append(out, sess)
		}
	}
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[sess.ID]; !exists {
		return ErrNotFound
	}
	s.sessions[sess.ID] = *sess
	return nil
}

func (s *MemoryStore) EndInactive(_ context.Context, olderThan time.Time, to Status) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for id, sess := range s.sessions {
		if sess.Status == StatusActive && sess.LastAccessed.Before(olderThan) {
			sess.Status = to
			s.sessions[id] = sess
			count++
		}
	}
	return count, nil
}

// Len returns the total number of records, any status.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
