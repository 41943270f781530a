// Package async runs functions in detached goroutines and hands back a
// future for their error.
//
// Its main consumer is the best-effort write path: store mutations that must
// not block a request (session renewal, lazy expiry cleanup) are issued via
// Exec on a non-cancelable context and left to complete on their own. The
// returned future makes the same primitive awaitable where the caller does
// care, for instance in tests.
//
//	future := async.Exec(context.WithoutCancel(ctx), id, func(ctx context.Context, id string) error {
//		return store.Delete(ctx, id)
//	})
//
//	// Fire-and-forget: drop the future. Or wait with a bound:
//	if err := future.AwaitWithTimeout(time.Second); err != nil {
//		// async.ErrTimeout or the function's own error
//	}
package async
