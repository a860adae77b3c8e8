// Package jobs wires collectors, renderers and messengers into the
// scheduled report runs.
package jobs

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer blocks until the next outbound message may be sent.
type Pacer interface {
	Wait(ctx context.Context) error
}

// NewPacer allows one message per interval. The first message is not
// delayed. A non-positive interval disables pacing.
func NewPacer(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}
