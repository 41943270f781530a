// Package postgres implements a PostgreSQL-backed session store on pgx.
//
// Sessions are keyed by their lookup ID and joined with the owning identity
// on read, so authenticated requests resolve the subject's public attributes
// in a single query. The schema ships as embedded goose migrations; apply
// them with Store.Migrate during startup:
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	store := postgres.New(pool)
//	if err := store.Migrate(ctx, log); err != nil {
//		return err
//	}
//	manager, err := session.NewManager(store)
//
// Writes honor an ambient transaction attached via pg.WithTx, falling back
// to the pool otherwise.
package postgres
