package crawl

import (
	"context"
	"time"
)

// Predicate reports whether a polled condition holds. Errors abort the poll.
type Predicate func(ctx context.Context) (bool, error)

// DefaultPollInterval is how often Poll re-evaluates its predicate.
const DefaultPollInterval = 250 * time.Millisecond

// Poll evaluates the predicate every interval until it holds, the timeout
// elapses, or the context is canceled. A timeout is an expected outcome and
// is reported as ok=false with a nil error; only predicate failures and
// context cancellation return an error.
func Poll(ctx context.Context, timeout, interval time.Duration, pred Predicate) (ok bool, err error) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	deadline := time.Now().Add(timeout)
	for {
		ok, err := pred(ctx)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}

		if time.Now().After(deadline) {
			return false, nil
		}

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(interval):
		}
	}
}
