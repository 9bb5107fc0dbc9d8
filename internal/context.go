package internal

import (
	"context"
	"time"
)

// DefaultRequestTimeout bounds request-scoped work that has no explicit
// deadline of its own.
const DefaultRequestTimeout = 5 * time.Second

// WithTimeout returns a context bounded by the given duration, falling back
// to DefaultRequestTimeout when the duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = DefaultRequestTimeout
	}
	return context.WithTimeout(ctx, duration)
}
