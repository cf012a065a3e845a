// Package ratelimit provides an adaptive rate limiter for outbound API
// calls. The rate climbs while calls succeed and backs off when the remote
// side pushes back.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// AdaptiveLimiter wraps a token-bucket limiter whose rate adjusts with the
// outcome of requests. Safe for concurrent use.
type AdaptiveLimiter struct {
	mu        sync.RWMutex
	limiter   *rate.Limiter
	minLimit  rate.Limit
	maxLimit  rate.Limit
	stepUp    rate.Limit
	stepDown  float64
	lastError time.Time
}

// New creates an AdaptiveLimiter.
//
//   - initial: starting requests per second
//   - min/max: rate bounds
//   - stepUp: increment applied on success
//   - stepDown: multiplier applied on failure (e.g. 0.5 to halve)
func New(initial, min, max rate.Limit, stepUp rate.Limit, stepDown float64) *AdaptiveLimiter {
	if initial < min {
		initial = min
	}
	burst := int(initial)
	if burst < 1 {
		burst = 1
	}
	return &AdaptiveLimiter{
		limiter:  rate.NewLimiter(initial, burst),
		minLimit: min,
		maxLimit: max,
		stepUp:   stepUp,
		stepDown: stepDown,
	}
}

// Wait blocks until a token is available or the context is canceled.
func (a *AdaptiveLimiter) Wait(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return a.limiter.Wait(ctx)
}

// Success raises the rate after a successful request, unless a failure was
// seen recently.
func (a *AdaptiveLimiter) Success() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if time.Since(a.lastError) > 10*time.Second {
		a.adjustLimit(a.limiter.Limit() + a.stepUp)
	}
}

// Backoff lowers the rate after a failure or a response indicating
// overload.
func (a *AdaptiveLimiter) Backoff() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lastError = time.Now()
	a.adjustLimit(rate.Limit(float64(a.limiter.Limit()) * a.stepDown))
}

// CurrentLimit returns the current requests per second.
func (a *AdaptiveLimiter) CurrentLimit() float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return float64(a.limiter.Limit())
}

func (a *AdaptiveLimiter) adjustLimit(newLimit rate.Limit) {
	if newLimit > a.maxLimit {
		newLimit = a.maxLimit
	} else if newLimit < a.minLimit {
		newLimit = a.minLimit
	}

	if newLimit != a.limiter.Limit() {
		a.limiter.SetLimit(newLimit)
		burst := int(newLimit)
		if burst < 1 {
			burst = 1
		}
		a.limiter.SetBurst(burst)
	}
}
