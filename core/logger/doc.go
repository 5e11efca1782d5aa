// Package logger provides slog constructors and attribute helpers used across
// the service.
//
// New builds a *slog.Logger writing to stdout. Production gets JSON output,
// development gets text output with debug level:
//
//	log := logger.New(logger.WithDevelopment("sessiond"))
//	log.Info("session created", logger.Component("session"), slog.String("id", id))
//
// Attribute helpers follow the empty-Attr pattern for nil safety, so
// log.Error("failed", logger.Error(err)) needs no explicit nil check.
package logger
