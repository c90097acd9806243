package crawl

import (
	"context"

	"golang.org/x/time/rate"
)

// Pacer spaces out actions against the crawled site using a token bucket.
// It replaces fixed sleeps between browser actions: one token per action,
// no bursting, so actions are at least 1/rps seconds apart.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a Pacer allowing rps actions per second with a burst of 1.
// An rps of 0 or less disables pacing.
func NewPacer(rps float64) *Pacer {
	if rps <= 0 {
		return &Pacer{}
	}
	return &Pacer{limiter: rate.NewLimiter(rate.Limit(rps), 1)}
}

// Wait blocks until the next action is allowed.
// Returns an error if the context is canceled before the wait completes.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.limiter == nil {
		return ctx.Err()
	}
	return p.limiter.Wait(ctx)
}
