package sweeper

import (
	"log/slog"
	"time"
)

// DefaultInterval is how often the sweep fires.
const DefaultInterval = 60 * time.Second

// Config holds sweeper configuration with environment variable support.
type Config struct {
	// Interval between sweep runs.
	Interval time.Duration `env:"SWEEP_INTERVAL" envDefault:"60s"`
}

// Option is a functional option for configuring the Sweeper.
type Option func(*Sweeper)

// WithInterval sets the time between sweep runs. Non-positive values keep
// the default.
func WithInterval(interval time.Duration) Option {
	return func(s *Sweeper) {
		if interval > 0 {
			s.interval = interval
		}
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Sweeper) {
		if log != nil {
			s.logger = log
		}
	}
}
