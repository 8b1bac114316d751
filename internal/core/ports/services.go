package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"fx-deals/internal/core/domain"
)

// DealCache is the Redis-layer dealId check (fast path). Deals are never
// deleted, so a remembered key is always a valid duplicate signal.
type DealCache interface {
	Seen(ctx context.Context, dealID string) (bool, error)
	Remember(ctx context.Context, dealID string, ttl time.Duration) error
}

// --- Service Ports (Business Logic) ---

// DealService defines the deal admission logic and read side.
type DealService interface {
	SaveDeal(ctx context.Context, deal *domain.Deal) (domain.AdmissionResult, error)
	GetDeal(ctx context.Context, dealID string) (*domain.Deal, error)
	ListDeals(ctx context.Context, params DealListParams) ([]domain.Deal, int64, error)
}

// AdmissionRecorder observes admission decisions (metrics).
type AdmissionRecorder interface {
	ObserveAdmission(outcome domain.AdmissionOutcome)
}

// AuditService records audit entries.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// RateLimitStore counts requests per key within a window.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}
