// Package pg provides PostgreSQL connection management with migrations and
// health checking.
//
// Connect wraps the pgx driver with retry logic and connection verification;
// Migrate applies embedded goose SQL migrations through the pgx stdlib
// bridge; Healthcheck returns a probe function for readiness endpoints.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, pgstore.Migrations, "migrations", slogger); err != nil {
//		log.Fatal(err)
//	}
//
// WithTx and TxFromContext propagate a pgx.Tx through context so stores can
// join an ambient transaction without changing their signatures.
package pg
