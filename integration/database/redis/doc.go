// Package redis provides Redis client initialization and health checking.
//
// Connect validates the URL, establishes the client with retry logic, and
// verifies connectivity with a ping before returning. Healthcheck returns a
// probe function for readiness endpoints.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
package redis
