package dto

import (
	"time"

	"fx-deals/internal/core/domain"

	"github.com/shopspring/decimal"
)

// CreateDealRequest is the request body for deal submission. Amount and
// Timestamp are pointers so a missing field stays distinguishable from zero.
type CreateDealRequest struct {
	DealID       string           `json:"dealId"`
	FromCurrency string           `json:"fromCurrency"`
	ToCurrency   string           `json:"toCurrency"`
	Amount       *decimal.Decimal `json:"amount"`
	Timestamp    *time.Time       `json:"timestamp,omitempty"`
}

// ToCandidate converts the request into an unvalidated domain deal.
func (r CreateDealRequest) ToCandidate() domain.DealCandidate {
	return domain.DealCandidate{
		DealID:       r.DealID,
		FromCurrency: r.FromCurrency,
		ToCurrency:   r.ToCurrency,
		Amount:       r.Amount,
		Timestamp:    r.Timestamp,
	}
}

// DealResponse is the response body for a stored deal.
type DealResponse struct {
	ID           int64           `json:"id"`
	DealID       string          `json:"dealId"`
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Amount       decimal.Decimal `json:"amount"`
	Timestamp    string          `json:"timestamp"`
}

// NewDealResponse maps a domain deal to its wire form.
func NewDealResponse(d *domain.Deal) DealResponse {
	return DealResponse{
		ID:           d.ID,
		DealID:       d.DealID,
		FromCurrency: d.FromCurrency,
		ToCurrency:   d.ToCurrency,
		Amount:       d.Amount,
		Timestamp:    d.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}

// DealListResponse wraps a paginated deal list.
type DealListResponse struct {
	Items      []DealResponse `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}
