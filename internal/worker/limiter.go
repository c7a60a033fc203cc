package worker

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter throttles replies per community so one busy subreddit cannot
// exhaust the account's posting allowance
type Limiter struct {
	limiters     map[string]*rate.Limiter
	mu           sync.RWMutex
	defaultRate  rate.Limit
	defaultBurst int
}

// NewLimiter creates a limiter; requestsPerSecond <= 0 disables throttling
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 5
	}

	return &Limiter{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  toLimit(requestsPerSecond),
		defaultBurst: burst,
	}
}

// Wait blocks until a reply to key (a subreddit name) is allowed
func (l *Limiter) Wait(ctx context.Context, key string) error {
	return l.getLimiter(normalizeKey(key)).Wait(ctx)
}

// SetRate overrides the limit for one key; requestsPerSecond <= 0 lifts it
func (l *Limiter) SetRate(key string, requestsPerSecond float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if burst <= 0 {
		burst = l.defaultBurst
	}

	l.limiters[normalizeKey(key)] = rate.NewLimiter(toLimit(requestsPerSecond), burst)
}

// getLimiter returns the limiter for key, creating it on first use
func (l *Limiter) getLimiter(key string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[key]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists := l.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(l.defaultRate, l.defaultBurst)
	l.limiters[key] = limiter

	return limiter
}

func toLimit(requestsPerSecond float64) rate.Limit {
	if requestsPerSecond <= 0 {
		return rate.Inf
	}
	return rate.Limit(requestsPerSecond)
}

// normalizeKey folds "r/Golang" and "golang" onto the same limiter
func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	return strings.TrimPrefix(key, "r/")
}
