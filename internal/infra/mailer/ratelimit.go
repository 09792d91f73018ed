package mailer

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimiter implements token bucket rate limiting for outbound mail.
// It prevents a burst of comments from overwhelming the SMTP relay.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a RateLimiter with the specified sustained rate
// and burst capacity.
//
// Example:
//
//	limiter := NewRateLimiter(1.0, 3)  // 1 mail/s with burst of 3
func NewRateLimiter(mailsPerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(mailsPerSecond), burst),
	}
}

// Wait blocks until a token is available or the context is canceled.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	return rl.limiter.Wait(ctx)
}
