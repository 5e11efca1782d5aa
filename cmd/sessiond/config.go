package main

import (
	"github.com/sessionlab/sessiond/core/server"
	"github.com/sessionlab/sessiond/core/session"
	"github.com/sessionlab/sessiond/core/sweeper"
	"github.com/sessionlab/sessiond/integration/database/mongo"
)

type Config struct {
	Mongo   mongo.Config
	Server  server.Config
	Session session.Config
	Sweep   sweeper.Config

	AppName      string `env:"APP_NAME" envDefault:"sessiond"`
	Env          string `env:"APP_ENV" envDefault:"development"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseName string `env:"MONGODB_DATABASE" envDefault:"sessiond"`
}
