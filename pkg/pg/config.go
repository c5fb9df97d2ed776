package pg

import "time"

// Config holds PostgreSQL pool settings, loaded from the environment.
type Config struct {
	// ConnectionString is the database connection URL.
	ConnectionString string `env:"PG_CONN_URL,required"`
	// MaxOpenConns caps the pool size.
	MaxOpenConns int32 `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
	// MaxIdleConns is the minimum number of idle connections kept warm.
	MaxIdleConns int32 `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
	// HealthCheckPeriod is the period between pool health checks.
	HealthCheckPeriod time.Duration `env:"PG_HEALTHCHECK_PERIOD" envDefault:"1m"`
	// MaxConnIdleTime is how long a connection may sit idle before closing.
	MaxConnIdleTime time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"`
	// MaxConnLifetime is the maximum age of a pooled connection.
	MaxConnLifetime time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"30m"`

	// RetryAttempts is how many times Connect tries before giving up.
	RetryAttempts int `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`
	// RetryInterval is the base pause between connection attempts.
	RetryInterval time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"`
}
