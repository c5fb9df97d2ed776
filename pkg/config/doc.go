// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11 to
// deliver a small API that loads the optional .env file, parses the
// environment into any Go struct using field tags, and caches each
// successfully loaded configuration type so it is only parsed once for the
// lifetime of the process.
//
// # Usage
//
// Create a struct describing your configuration and annotate its fields
// with env tags:
//
//	type RedisConfig struct {
//	    ConnectionURL string `env:"REDIS_URL,required"`
//	    RetryAttempts int    `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
//	}
//
//	var cfg RedisConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Subsequent calls to config.Load for the same struct type are served from
// the in-memory cache without re-parsing.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with errors.Is:
//
//   - ErrParsingConfig – failed to parse env vars into the struct.
//   - ErrNilPointer – nil pointer passed to Load/MustLoad.
package config
