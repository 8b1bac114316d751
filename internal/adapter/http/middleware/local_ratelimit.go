package middleware

import (
	"context"
	"math"
	"sync"
	"time"

	"fx-deals/internal/core/ports"

	"golang.org/x/time/rate"
)

const localSweepThreshold = 10000

type localEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LocalRateLimitStore implements ports.RateLimitStore with in-process token
// buckets. It is used when Redis is disabled, so limits are per instance.
type LocalRateLimitStore struct {
	mu      sync.Mutex
	entries map[string]*localEntry
	now     func() time.Time
}

// NewLocalRateLimitStore creates an empty in-process rate limit store.
func NewLocalRateLimitStore() *LocalRateLimitStore {
	return &LocalRateLimitStore{
		entries: make(map[string]*localEntry),
		now:     time.Now,
	}
}

// Allow takes one token from the key's bucket. The bucket holds limit tokens
// and refills at limit per window.
func (s *LocalRateLimitStore) Allow(_ context.Context, key string, limit int64, window time.Duration) (*ports.RateLimitResult, error) {
	if limit < 1 {
		limit = 1
	}
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) >= localSweepThreshold {
		s.sweep(now, window)
	}

	e, ok := s.entries[key]
	if !ok {
		every := window / time.Duration(limit)
		e = &localEntry{limiter: rate.NewLimiter(rate.Every(every), int(limit))}
		s.entries[key] = e
	}
	e.lastSeen = now

	allowed := e.limiter.AllowN(now, 1)
	tokens := e.limiter.TokensAt(now)

	remaining := int64(math.Floor(tokens))
	if remaining < 0 {
		remaining = 0
	}

	// Time until one token is available again.
	var wait time.Duration
	if tokens < 1 {
		wait = time.Duration((1 - tokens) * float64(window) / float64(limit))
	}

	return &ports.RateLimitResult{
		Allowed:   allowed,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   now.Add(wait).Unix(),
	}, nil
}

// sweep drops buckets idle for longer than a window; they are full again anyway.
func (s *LocalRateLimitStore) sweep(now time.Time, window time.Duration) {
	for k, e := range s.entries {
		if now.Sub(e.lastSeen) > window {
			delete(s.entries, k)
		}
	}
}
