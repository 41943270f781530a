// Package mongo implements a MongoDB-backed session store.
//
// Sessions are documents in the "sessions" collection keyed by lookup ID,
// with the owning identity embedded. A TTL index on expires_at evicts
// expired sessions; create it once at startup with EnsureIndexes.
//
//	client, err := mongoconn.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	store := mongo.New(client.Database(cfg.Database))
//	if err := store.EnsureIndexes(ctx); err != nil {
//		return err
//	}
//	manager, err := session.NewManager(store)
package mongo
