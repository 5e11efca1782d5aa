package session

import (
	"context"
	"time"
)

// Store defines the persistence interface for session records.
// Implementations must make each call atomic in isolation and must be safe
// for concurrent use; no transaction across calls is assumed.
type Store interface {
	// Insert persists a new record. Returns ErrDuplicateID if the id exists.
	Insert(ctx context.Context, sess *Session) error

	// GetByID returns the record with the given id or ErrNotFound.
	GetByID(ctx context.Context, id string) (*Session, error)

	// ListByStatus returns all records in the given state. An empty result
	// is a nil or empty slice, not an error.
	ListByStatus(ctx context.Context, status Status) ([]Session, error)

	// Save persists mutations to an existing record. Returns ErrNotFound if
	// the record no longer exists.
	Save(ctx context.Context, sess *Session) error

	// EndInactive atomically transitions every Active record whose
	// LastAccessed is strictly older than olderThan into the terminal state
	// to, returning the number of records transitioned.
	EndInactive(ctx context.Context, olderThan time.Time, to Status) (int64, error)
}
