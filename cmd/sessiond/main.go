package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/sessionlab/sessiond/core/config"
	"github.com/sessionlab/sessiond/core/logger"
	"github.com/sessionlab/sessiond/core/server"
	"github.com/sessionlab/sessiond/core/session"
	"github.com/sessionlab/sessiond/core/sweeper"
	"github.com/sessionlab/sessiond/httpapi"
	"github.com/sessionlab/sessiond/integration/database/mongo"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg)

	log := logger.New(logger.WithAppName(cfg.AppName), logger.WithLevel(cfg.LogLevel))
	if cfg.Env == "development" {
		log = logger.New(logger.WithDevelopment(cfg.AppName))
	}

	// Session storage: MongoDB when configured, in-memory otherwise. The
	// in-memory store loses everything on restart and is meant for local runs.
	var (
		store       session.Store
		readychecks []func(context.Context) error
	)
	if cfg.Mongo.URL != "" {
		client, err := mongo.New(ctx, cfg.Mongo)
		if err != nil {
			log.Error("failed to connect to mongodb", logger.Component("database"), logger.Error(err))
			os.Exit(1)
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		sessions := mongo.NewSessionStore(client.Database(cfg.DatabaseName))
		if err := sessions.EnsureIndexes(ctx); err != nil {
			log.Error("failed to create indexes", logger.Component("database"), logger.Error(err))
			os.Exit(1)
		}

		store = sessions
		readychecks = append(readychecks, mongo.Healthcheck(client))
	} else {
		log.Warn("MONGODB_URL not set, using in-memory session store",
			logger.Component("database"))
		store = session.NewMemoryStore()
	}

	mgr := session.NewFromConfig(cfg.Session, store)

	sw := sweeper.NewFromConfig(cfg.Sweep, mgr, sweeper.WithLogger(log))

	router := httpapi.NewRouter(httpapi.NewHandler(mgr, log), readychecks...)

	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	if err != nil {
		log.Error("failed to create server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("starting",
		logger.Component("main"),
		slog.String("addr", srv.Addr()),
		slog.Duration("inactivity_threshold", mgr.InactivityThreshold()),
		slog.Duration("sweep_interval", cfg.Sweep.Interval))

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(srv.Run(ctx, router))
	eg.Go(sw.Run(ctx))

	if err := eg.Wait(); err != nil {
		log.Error("application failed", logger.Error(err))
		os.Exit(1)
	}

	log.Info("application stopped")
}
