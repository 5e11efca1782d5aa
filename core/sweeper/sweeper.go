package sweeper

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/sessionlab/sessiond/core/logger"
)

// Expirer ends inactive sessions in bulk, returning the number ended.
type Expirer interface {
	SweepExpired(ctx context.Context) (int64, error)
}

// ErrAlreadyRunning is returned when Start is called on a running sweeper.
var ErrAlreadyRunning = errors.New("sweeper already running")

// Sweeper drives the expiry sweep on a fixed interval.
type Sweeper struct {
	expirer  Expirer
	interval time.Duration
	logger   *slog.Logger

	running atomic.Bool

	// Observability counters
	sweepsRun       atomic.Int64
	sessionsExpired atomic.Int64
}

// Stats provides observability counters for monitoring and debugging.
type Stats struct {
	SweepsRun       int64 // Total sweep runs since start
	SessionsExpired int64 // Total sessions transitioned by this process
	IsRunning       bool
}

// New creates a sweeper for the given expirer. Defaults: 60s interval,
// no-op logger.
func New(expirer Expirer, opts ...Option) *Sweeper {
	s := &Sweeper{
		expirer:  expirer,
		interval: DefaultInterval,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NewFromConfig creates a Sweeper from configuration. Additional options
// override config values.
func NewFromConfig(cfg Config, expirer Expirer, opts ...Option) *Sweeper {
	allOpts := append([]Option{WithInterval(cfg.Interval)}, opts...)
	return New(expirer, allOpts...)
}

// Start blocks, sweeping once immediately and then on every tick, until the
// context is canceled. Returns ctx.Err() on cancellation.
func (s *Sweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer s.running.Store(false)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.InfoContext(ctx, "sweeper started",
		logger.Component("sweeper"),
		slog.Duration("interval", s.interval))

	s.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.InfoContext(context.Background(), "sweeper stopping",
				logger.Component("sweeper"))
			return ctx.Err()
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// Run provides errgroup compatibility. The returned function starts the
// sweeper and reports nil on clean context cancellation.
func (s *Sweeper) Run(ctx context.Context) func() error {
	return func() error {
		err := s.Start(ctx)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		return err
	}
}

// Stats returns a snapshot of the sweeper's counters.
func (s *Sweeper) Stats() Stats {
	return Stats{
		SweepsRun:       s.sweepsRun.Load(),
		SessionsExpired: s.sessionsExpired.Load(),
		IsRunning:       s.running.Load(),
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	// A sweep is expected to finish well within its tick; the timeout keeps
	// a wedged store from stalling shutdown.
	sweepCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	start := time.Now()
	count, err := s.expirer.SweepExpired(sweepCtx)
	s.sweepsRun.Add(1)

	if err != nil {
		s.logger.ErrorContext(ctx, "expiry sweep failed",
			logger.Component("sweeper"),
			logger.Error(err))
		return
	}

	s.sessionsExpired.Add(count)

	if count > 0 {
		s.logger.InfoContext(ctx, "expired inactive sessions",
			logger.Component("sweeper"),
			logger.Count(count),
			logger.Duration(time.Since(start)))
	}
}
