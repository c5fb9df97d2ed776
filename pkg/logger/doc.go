// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration and transparent injection of
// values stored in context.Context.
//
// A single factory, New, creates a *slog.Logger configured by a set of
// Option functions: output format (text or json), minimum level, static
// attributes applied to every record, and ContextExtractor callbacks that
// pull attributes from context (such as the tenant id) on every Handle
// call.
//
// # Usage
//
//	import (
//	    "github.com/fleetkit/fleetkit/pkg/logger"
//	    "github.com/fleetkit/fleetkit/pkg/tenant"
//	)
//
//	func main() {
//	    log := logger.New(
//	        logger.WithProduction("fleet-api"),
//	        logger.WithContextExtractors(tenant.LoggerExtractor()),
//	    )
//	    logger.SetAsDefault(log)
//
//	    log.InfoContext(ctx, "trip recorded", slog.String("trip_id", id))
//	}
package logger
