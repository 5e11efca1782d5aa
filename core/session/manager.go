package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sessionlab/sessiond/pkg/netid"
)

// insertAttempts bounds id regeneration on the (practically impossible)
// duplicate-key collision at creation.
const insertAttempts = 3

// Manager owns session state transitions and the inactivity-timeout policy.
// It holds no in-process locks; consistency relies on the Store's
// per-operation atomicity.
type Manager struct {
	store     Store
	threshold time.Duration
	resolve   func() ServerData
}

// NewManager creates a lifecycle manager with the given store.
// Defaults: 120s inactivity threshold, host interface scan for the server
// identity.
func NewManager(store Store, opts ...Option) *Manager {
	m := &Manager{
		store:     store,
		threshold: DefaultInactivityThreshold,
		resolve: func() ServerData {
			id := netid.Resolve()
			return ServerData{IP: id.IP, MAC: id.MAC}
		},
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// NewFromConfig creates a Manager from configuration. Additional options
// override config values.
func NewFromConfig(cfg Config, store Store, opts ...Option) *Manager {
	allOpts := append([]Option{WithInactivityThreshold(cfg.InactivityThreshold)}, opts...)
	return NewManager(store, allOpts...)
}

// Login creates and persists a new Active session. Email, nickname, and the
// client MAC are required; the client IP comes from transport metadata and may
// be empty. Returns the created record.
func (m *Manager) Login(ctx context.Context, p LoginParams) (*Session, error) {
	if err := validateLogin(p); err != nil {
		return nil, err
	}

	server := m.resolve()

	// An id collision means the generator misbehaved; regenerate rather
	// than surface an internal condition to the caller.
	var sess Session
	for attempt := 0; attempt < insertAttempts; attempt++ {
		sess = New(p, server)
		err := m.store.Insert(ctx, &sess)
		if err == nil {
			return &sess, nil
		}
		if !errors.Is(err, ErrDuplicateID) {
			return nil, err
		}
	}
	return nil, ErrDuplicateID
}

// Logout transitions the session to EndedByUser. Logging out a session that
// already reached a terminal state fails with ErrAlreadyTerminated, which
// also keeps a user logout from overwriting a system expiry.
func (m *Manager) Logout(ctx context.Context, id string) (*Session, error) {
	sess, err := m.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := sess.End(StatusEndedByUser); err != nil {
		return nil, err
	}

	if err := m.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Heartbeat refreshes the session's LastAccessed timestamp and returns the
// updated record. Heartbeats on terminal sessions fail with
// ErrAlreadyTerminated.
func (m *Manager) Heartbeat(ctx context.Context, id string) (*Session, error) {
	sess, err := m.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := sess.Touch(); err != nil {
		return nil, err
	}

	if err := m.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Status returns the session and its inactivity duration, floored to whole
// seconds. Read-only: LastAccessed is not refreshed.
func (m *Manager) Status(ctx context.Context, id string) (*Session, Inactivity, error) {
	sess, err := m.get(ctx, id)
	if err != nil {
		return nil, Inactivity{}, err
	}
	return sess, sess.Inactivity(), nil
}

// ListActive returns all sessions currently in the Active state. An empty set
// is signaled with ErrNoActiveSessions, distinct from a store failure.
func (m *Manager) ListActive(ctx context.Context) ([]Session, error) {
	sessions, err := m.store.ListByStatus(ctx, StatusActive)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, ErrNoActiveSessions
	}
	return sessions, nil
}

// SweepExpired transitions every Active session that has been idle longer
// than the configured threshold to EndedBySystem in a single atomic store
// operation, returning the number of sessions ended. Idempotent: a second
// run with no intervening activity transitions nothing.
func (m *Manager) SweepExpired(ctx context.Context) (int64, error) {
	olderThan := time.Now().UTC().Add(-m.threshold)
	return m.store.EndInactive(ctx, olderThan, StatusEndedBySystem)
}

// InactivityThreshold returns the configured idle duration.
func (m *Manager) InactivityThreshold() time.Duration {
	return m.threshold
}

func (m *Manager) get(ctx context.Context, id string) (*Session, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrMissingSessionID
	}
	return m.store.GetByID(ctx, id)
}

func validateLogin(p LoginParams) error {
	switch {
	case strings.TrimSpace(p.Email) == "":
		return fmt.Errorf("%w: email", ErrInvalidInput)
	case strings.TrimSpace(p.Nickname) == "":
		return fmt.Errorf("%w: nickname", ErrInvalidInput)
	case strings.TrimSpace(p.ClientMAC) == "":
		return fmt.Errorf("%w: macAddress", ErrInvalidInput)
	}
	return nil
}
