package async

import (
	"context"
	"time"
)

// ExecFuture represents the result of a detached computation that only
// returns an error. Callers may Await it, poll it, or drop it entirely for
// fire-and-forget semantics.
type ExecFuture struct {
	err  error
	done chan struct{}
}

// Await blocks until the detached function completes and returns its error.
func (f *ExecFuture) Await() error {
	<-f.done
	return f.err
}

// AwaitWithTimeout waits for completion up to the given duration.
// Returns ErrTimeout if the function has not finished in time; the function
// itself keeps running.
func (f *ExecFuture) AwaitWithTimeout(timeout time.Duration) error {
	select {
	case <-f.done:
		return f.err
	case <-time.After(timeout):
		return ErrTimeout
	}
}

// IsComplete reports completion without blocking.
func (f *ExecFuture) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Exec runs fn in its own goroutine and returns a future for its error.
// If ctx is already canceled the function is not invoked and the future
// resolves to the context error.
func Exec[T any](ctx context.Context, param T, fn func(context.Context, T) error) *ExecFuture {
	f := &ExecFuture{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.err = fn(ctx, param)
	}()

	return f
}
