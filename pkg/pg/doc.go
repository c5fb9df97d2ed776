// Package pg provides utilities for interacting with PostgreSQL using the
// pgx/v5 driver: connection pooling with retries, health checks, and common
// error helpers. The operator registry in package tenant is built on it.
//
// # Usage
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    panic(err)
//	}
//	defer pool.Close()
//
//	health := pg.Healthcheck(pool)
//	if err := health(ctx); err != nil {
//	    // database is not healthy
//	}
//
// # Error Handling
//
// Helpers such as [IsNotFoundError] and [IsDuplicateKeyError] classify errors
// returned by pgx and *pgconn.PgError so business logic doesn't inspect
// SQLSTATE codes directly.
package pg
