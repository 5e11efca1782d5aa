package session

import "errors"

var (
	// ErrInvalidInput is returned when a required login field is absent or empty.
	ErrInvalidInput = errors.New("missing required field")
	// ErrMissingSessionID is returned when an operation is called without a session id.
	ErrMissingSessionID = errors.New("session id is required")
	// ErrNotFound is returned when the referenced session id has no record.
	ErrNotFound = errors.New("session not found")
	// ErrDuplicateID is returned by stores on a session id collision at insert.
	ErrDuplicateID = errors.New("session id already exists")
	// ErrAlreadyTerminated is returned when operating on a session in a terminal state.
	ErrAlreadyTerminated = errors.New("session already terminated")
	// ErrNotTerminal is returned when a transition targets a non-terminal state.
	ErrNotTerminal = errors.New("target status is not terminal")
	// ErrNoActiveSessions signals an empty active set. Not a store failure;
	// callers decide whether to treat it as an error.
	ErrNoActiveSessions = errors.New("no active sessions")
	// ErrStoreUnavailable is returned when the persistence layer is unreachable.
	ErrStoreUnavailable = errors.New("session store unavailable")
)
