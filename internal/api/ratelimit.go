package api

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// Backend rate limits:
// - 120 requests per minute
// - 10000 requests per day

// RateLimiter manages MentalPitch API rate limits
type RateLimiter struct {
	mu sync.Mutex

	// 1-minute window
	minuteLimit    int
	minuteUsage    int
	minuteResetsAt time.Time

	// Daily window
	dailyLimit    int
	dailyUsage    int
	dailyResetsAt time.Time

	// Minimum interval between requests
	minInterval time.Duration
	lastRequest time.Time
}

// NewRateLimiter creates a rate limiter with the backend's default limits
func NewRateLimiter() *RateLimiter {
	now := time.Now()
	return &RateLimiter{
		minuteLimit:    120,
		minuteResetsAt: now.Add(time.Minute),
		dailyLimit:     10000,
		dailyResetsAt:  now.Truncate(24 * time.Hour).Add(24 * time.Hour),
		minInterval:    50 * time.Millisecond,
	}
}

// Wait blocks until a request can be made without exceeding rate limits
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()

	// Reset windows if expired
	if now.After(r.minuteResetsAt) {
		r.minuteUsage = 0
		r.minuteResetsAt = now.Add(time.Minute)
	}
	if now.After(r.dailyResetsAt) {
		r.dailyUsage = 0
		r.dailyResetsAt = now.Truncate(24 * time.Hour).Add(24 * time.Hour)
	}

	// Check minute limit
	if r.minuteUsage >= r.minuteLimit {
		if err := r.sleep(ctx, time.Until(r.minuteResetsAt)); err != nil {
			return err
		}
		r.minuteUsage = 0
		r.minuteResetsAt = time.Now().Add(time.Minute)
	}

	// Check daily limit
	if r.dailyUsage >= r.dailyLimit {
		if err := r.sleep(ctx, time.Until(r.dailyResetsAt)); err != nil {
			return err
		}
		r.dailyUsage = 0
		r.dailyResetsAt = time.Now().Truncate(24 * time.Hour).Add(24 * time.Hour)
	}

	// Enforce minimum interval between requests
	if elapsed := time.Since(r.lastRequest); elapsed < r.minInterval {
		if err := r.sleep(ctx, r.minInterval-elapsed); err != nil {
			return err
		}
	}

	r.minuteUsage++
	r.dailyUsage++
	r.lastRequest = time.Now()

	return nil
}

// sleep releases the lock while waiting so other callers aren't blocked,
// then re-acquires it before returning. The caller must hold r.mu.
func (r *RateLimiter) sleep(ctx context.Context, d time.Duration) error {
	r.mu.Unlock()
	defer r.mu.Lock()

	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// UpdateFromHeaders updates rate limit state from API response headers
func (r *RateLimiter) UpdateFromHeaders(h http.Header) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit := h.Get("X-RateLimit-Limit"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			r.minuteLimit = n
		}
	}
	if remaining := h.Get("X-RateLimit-Remaining"); remaining != "" {
		if n, err := strconv.Atoi(remaining); err == nil {
			r.minuteUsage = r.minuteLimit - n
		}
	}
}

// Status returns current rate limit status
func (r *RateLimiter) Status() (minuteRemaining, dailyRemaining int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.minuteLimit - r.minuteUsage, r.dailyLimit - r.dailyUsage
}
