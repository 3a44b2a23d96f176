package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter defines the interface for throttling outbound Graph API calls
type Limiter interface {
	Wait(ctx context.Context) error
}

// APILimiter is a token-bucket limiter shared by all Graph API requests
type APILimiter struct {
	limiter *rate.Limiter
}

// NewAPILimiter creates a limiter allowing requestsPerSecond sustained calls
// with a burst of burst calls.
func NewAPILimiter(requestsPerSecond float64, burst int) *APILimiter {
	return &APILimiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// Wait blocks until a request is allowed or the context is cancelled
func (l *APILimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

var _ Limiter = (*APILimiter)(nil)
