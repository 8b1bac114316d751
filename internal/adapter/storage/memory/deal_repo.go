// Package memory provides a process-local deal store for development runs
// and end-to-end tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"fx-deals/internal/core/domain"
	"fx-deals/internal/core/ports"
)

// DealRepo implements ports.DealRepository over a mutex-guarded map.
type DealRepo struct {
	mu     sync.RWMutex
	nextID int64
	deals  map[string]domain.Deal
}

// NewDealRepo creates an empty in-memory deal store.
func NewDealRepo() *DealRepo {
	return &DealRepo{deals: make(map[string]domain.Deal)}
}

// ExistsByDealID checks whether a deal with the business key is stored.
func (r *DealRepo) ExistsByDealID(_ context.Context, dealID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.deals[dealID]
	return ok, nil
}

// Save stores the deal unless the dealId is taken, in which case it returns
// domain.ErrDealExists.
func (r *DealRepo) Save(_ context.Context, deal *domain.Deal) (*domain.Deal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.deals[deal.DealID]; ok {
		return nil, domain.ErrDealExists
	}

	r.nextID++
	stored := *deal
	stored.ID = r.nextID
	if stored.Timestamp.IsZero() {
		stored.Timestamp = time.Now().UTC()
	}
	r.deals[stored.DealID] = stored

	out := stored
	return &out, nil
}

// GetByDealID returns nil, nil when the deal is absent.
func (r *DealRepo) GetByDealID(_ context.Context, dealID string) (*domain.Deal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.deals[dealID]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

// List returns deals newest first, filtered and paginated like the SQL store.
func (r *DealRepo) List(_ context.Context, params ports.DealListParams) ([]domain.Deal, int64, error) {
	r.mu.RLock()
	matched := make([]domain.Deal, 0, len(r.deals))
	for _, d := range r.deals {
		if params.FromCurrency != "" && d.FromCurrency != params.FromCurrency {
			continue
		}
		if params.ToCurrency != "" && d.ToCurrency != params.ToCurrency {
			continue
		}
		matched = append(matched, d)
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Timestamp.Equal(matched[j].Timestamp) {
			return matched[i].Timestamp.After(matched[j].Timestamp)
		}
		return matched[i].ID > matched[j].ID
	})

	total := int64(len(matched))
	start := (params.Page - 1) * params.PageSize
	if start < 0 || start >= len(matched) {
		return []domain.Deal{}, total, nil
	}
	end := start + params.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// Count returns the number of stored deals.
func (r *DealRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.deals)), nil
}
