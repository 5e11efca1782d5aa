package mongo

import "errors"

var (
	// ErrFailedToConnectToMongo is returned when all retry attempts are exhausted.
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongodb")
	// ErrHealthcheckFailed is returned when the health check ping fails.
	ErrHealthcheckFailed = errors.New("mongodb healthcheck failed")
	// ErrMissingURL is returned when no connection string is configured.
	ErrMissingURL = errors.New("mongodb connection string is required")
)
