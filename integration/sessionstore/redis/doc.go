// Package redis implements a Redis-backed session store.
//
// Each session is a JSON record stored under "session:<lookup ID>" with the
// key TTL synced to the record's expiry, so Redis evicts expired sessions on
// its own and DeleteExpired has nothing to do. Expiry updates run as an
// optimistic WATCH/MULTI/EXEC compare-and-set, so a renewal racing a
// sign-out can never write a deleted session back and the stored expiry
// only ever moves forward.
//
//	client, err := redisconn.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	manager, err := session.NewManager(redis.New(client))
package redis
