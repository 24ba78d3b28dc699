package reconcile

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces out sheet writes. *rate.Limiter satisfies it.
type Pacer interface {
	Wait(ctx context.Context) error
}

// NewPacer allows one write per interval. The initial token is spent, so
// the first Wait already blocks for a full interval.
func NewPacer(interval time.Duration) *rate.Limiter {
	lim := rate.NewLimiter(rate.Every(interval), 1)
	lim.Allow()
	return lim
}

// NoPacer never waits. It still reports a done context.
type NoPacer struct{}

func (NoPacer) Wait(ctx context.Context) error {
	return ctx.Err()
}
