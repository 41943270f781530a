package async

import "errors"

// ErrTimeout is returned by AwaitWithTimeout when the detached function has
// not completed within the given duration.
var ErrTimeout = errors.New("async: await timed out")
