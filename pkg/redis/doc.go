// Package redis provides helpers for connecting to the Redis server backing
// the platform's caches, such as the resolved-operator cache in package
// tenant.
//
// The package wraps the go-redis client and adds a Connect function that
// retries the connection using the supplied configuration, plus a
// health-check probe for readiness endpoints. Configuration is described by
// the Config struct whose fields are populated from environment variables
// via package config.
//
// # Usage
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    // handle error, probably terminate the application
//	}
//	defer client.Close()
//
//	checker := redis.Healthcheck(client)
//	if err := checker(ctx); err != nil {
//	    // redis is not healthy
//	}
//
// Sentinel errors (e.g. ErrNotReady) wrap the underlying go-redis errors
// using errors.Join, so they compare with errors.Is.
package redis
