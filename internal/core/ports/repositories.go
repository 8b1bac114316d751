package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"

	"fx-deals/internal/core/domain"
)

// DealRepository defines persistence operations for deals.
type DealRepository interface {
	// ExistsByDealID reports whether a deal with the business key is stored.
	ExistsByDealID(ctx context.Context, dealID string) (bool, error)
	// Save assigns the surrogate ID and writes the deal. It returns
	// domain.ErrDealExists when the business key is already taken.
	Save(ctx context.Context, deal *domain.Deal) (*domain.Deal, error)
	GetByDealID(ctx context.Context, dealID string) (*domain.Deal, error)
	List(ctx context.Context, params DealListParams) ([]domain.Deal, int64, error)
	Count(ctx context.Context) (int64, error)
}

// DealListParams holds filter + pagination for listing deals.
type DealListParams struct {
	FromCurrency string // empty = any
	ToCurrency   string // empty = any
	Page         int
	PageSize     int
}

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}
