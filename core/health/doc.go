// Package health provides HTTP handlers for service health monitoring.
//
// Handlers:
//   - Liveness: Process is running (no dependency checks)
//   - Readiness: All dependencies are available
//   - NoContent: Returns 204 for minimal overhead
//
// Usage:
//
//	mux.Handle("/health/live", health.Liveness())
//	mux.Handle("/health/ready", health.Readiness(log,
//		pg.Healthcheck(pool),
//		redis.Healthcheck(client),
//	))
//	mux.Handle("/ping", health.NoContent())
//
// Dependency checks must follow the func(context.Context) error signature:
//
//	func checkDB(ctx context.Context) error {
//		return db.Ping(ctx)
//	}
package health
