package ai

import (
	"context"

	"golang.org/x/time/rate"

	"newssaar/backend/internal/logger"
)

// DefaultRateLimit is the default QPS limit.
const DefaultRateLimit = 10

// RateLimiter provides global rate limiting for AI API calls shared by the
// summarizer and the translator.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a new rate limiter with the given QPS.
func NewRateLimiter(qps int) *RateLimiter {
	if qps <= 0 {
		qps = DefaultRateLimit
	}
	logger.Debug("ai rate limiter created", "module", "ai", "action", "create", "resource", "ai", "result", "ok", "qps", qps)
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(qps), qps), // burst = qps
	}
}

// Wait blocks until a token is available or context is cancelled.
// A nil limiter never blocks.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if r == nil {
		return ctx.Err()
	}
	return r.limiter.Wait(ctx)
}

// Limit returns the configured QPS.
func (r *RateLimiter) Limit() int {
	if r == nil {
		return 0
	}
	return int(r.limiter.Limit())
}

// LimitedProvider wraps a Provider so every Complete call first waits on the limiter.
type LimitedProvider struct {
	Provider
	limiter *RateLimiter
}

// WithRateLimit returns p guarded by limiter.
func WithRateLimit(p Provider, limiter *RateLimiter) *LimitedProvider {
	return &LimitedProvider{Provider: p, limiter: limiter}
}

// Complete waits for a token and then delegates.
func (l *LimitedProvider) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return l.Provider.Complete(ctx, systemPrompt, content)
}
