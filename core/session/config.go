package session

import "time"

// DefaultInactivityThreshold is how long a session may go without a heartbeat
// before the expiry sweep ends it.
const DefaultInactivityThreshold = 120 * time.Second

// Config holds lifecycle manager configuration.
type Config struct {
	// InactivityThreshold is the idle duration after which the sweep
	// transitions a session to EndedBySystem.
	InactivityThreshold time.Duration `env:"SESSION_INACTIVITY_THRESHOLD" envDefault:"120s"`
}

// Option is a functional option for configuring the Manager.
type Option func(*Manager)

// WithInactivityThreshold sets the idle duration used by SweepExpired.
// Non-positive values keep the default.
func WithInactivityThreshold(threshold time.Duration) Option {
	return func(m *Manager) {
		if threshold > 0 {
			m.threshold = threshold
		}
	}
}

// WithIdentityResolver overrides how the server's own network identity is
// resolved at session creation.
func WithIdentityResolver(resolve func() ServerData) Option {
	return func(m *Manager) {
		if resolve != nil {
			m.resolve = resolve
		}
	}
}
