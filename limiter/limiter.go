// Package limiter paces requests to a site that publishes no rate
// limit: a fixed sleep between fetches, nothing adaptive.
package limiter

import (
	"context"
	"time"
)

func New(delay time.Duration) *Limiter {
	return &Limiter{delay: delay}
}

type Limiter struct {
	delay time.Duration
}

// Pause sleeps for the configured delay, returning early with ctx's
// error if the context is canceled first.
func (lim *Limiter) Pause(ctx context.Context) error {
	if lim.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(lim.delay):
		return nil
	}
}
