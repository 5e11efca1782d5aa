package mongo

import "time"

// Config holds MongoDB connection configuration with environment variable
// support. Defaults are optimized for MongoDB Atlas deployments.
type Config struct {
	// URL is the connection string. Empty means no database is configured;
	// the caller decides whether that is fatal.
	URL string `env:"MONGODB_URL"`

	ConnectTimeout  time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
	MaxPoolSize     uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`
	MinPoolSize     uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"1"`
	MaxConnIdleTime time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"`
	RetryWrites     bool          `env:"MONGODB_RETRY_WRITES" envDefault:"true"`
	RetryReads      bool          `env:"MONGODB_RETRY_READS" envDefault:"true"`

	// Application-level connect retry; absorbs Atlas cold starts (5-8s).
	RetryAttempts uint64        `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s"`
}
