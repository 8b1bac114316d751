package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fx-deals/internal/core/domain"
	"fx-deals/internal/core/ports"
	"fx-deals/pkg/apperror"

	"github.com/rs/zerolog"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// DealServiceImpl implements ports.DealService.
type DealServiceImpl struct {
	repo     ports.DealRepository
	cache    ports.DealCache
	recorder ports.AdmissionRecorder
	cacheTTL time.Duration
	log      zerolog.Logger
}

// NewDealService creates a new DealServiceImpl.
// cache and recorder may be nil.
func NewDealService(
	repo ports.DealRepository,
	cache ports.DealCache,
	recorder ports.AdmissionRecorder,
	cacheTTL time.Duration,
	log zerolog.Logger,
) *DealServiceImpl {
	return &DealServiceImpl{
		repo:     repo,
		cache:    cache,
		recorder: recorder,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// SaveDeal admits a validated deal: it is stored unless its dealId is
// already known, in which case the result is DUPLICATE and nothing is written.
func (s *DealServiceImpl) SaveDeal(ctx context.Context, deal *domain.Deal) (domain.AdmissionResult, error) {
	// Layer 1: Redis dealId check
	if s.cache != nil {
		seen, err := s.cache.Seen(ctx, deal.DealID)
		if err != nil {
			s.log.Warn().Err(err).Str("deal_id", deal.DealID).Msg("redis deal check failed, falling through to DB")
		} else if seen {
			return s.duplicate(deal.DealID), nil
		}
	}

	// Layer 2: DB existence check
	exists, err := s.repo.ExistsByDealID(ctx, deal.DealID)
	if err != nil {
		return domain.AdmissionResult{}, apperror.ErrDatabaseError(fmt.Errorf("check deal exists: %w", err))
	}
	if exists {
		s.remember(ctx, deal.DealID)
		return s.duplicate(deal.DealID), nil
	}

	stored, err := s.repo.Save(ctx, deal)
	if err != nil {
		if errors.Is(err, domain.ErrDealExists) {
			// Lost the race to a concurrent writer.
			s.remember(ctx, deal.DealID)
			return s.duplicate(deal.DealID), nil
		}
		return domain.AdmissionResult{}, apperror.ErrDatabaseError(fmt.Errorf("save deal: %w", err))
	}

	s.remember(ctx, stored.DealID)
	s.observe(domain.AdmissionSaved)

	s.log.Info().
		Str("deal_id", stored.DealID).
		Int64("id", stored.ID).
		Str("from", stored.FromCurrency).
		Str("to", stored.ToCurrency).
		Str("amount", stored.Amount.String()).
		Msg("deal saved")

	return domain.AdmissionResult{Outcome: domain.AdmissionSaved, Deal: stored}, nil
}

// GetDeal returns a stored deal or DEAL_002 when absent.
func (s *DealServiceImpl) GetDeal(ctx context.Context, dealID string) (*domain.Deal, error) {
	deal, err := s.repo.GetByDealID(ctx, dealID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get deal: %w", err))
	}
	if deal == nil {
		return nil, apperror.ErrDealNotFound(dealID)
	}
	return deal, nil
}

// ListDeals returns one page of deals, newest first.
func (s *DealServiceImpl) ListDeals(ctx context.Context, params ports.DealListParams) ([]domain.Deal, int64, error) {
	params = NormalizeListParams(params)

	deals, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.ErrDatabaseError(fmt.Errorf("list deals: %w", err))
	}
	return deals, total, nil
}

// NormalizeListParams clamps pagination and trims currency filters.
func NormalizeListParams(params ports.DealListParams) ports.DealListParams {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > maxPageSize {
		params.PageSize = defaultPageSize
	}
	params.FromCurrency = strings.TrimSpace(params.FromCurrency)
	params.ToCurrency = strings.TrimSpace(params.ToCurrency)
	return params
}

func (s *DealServiceImpl) duplicate(dealID string) domain.AdmissionResult {
	s.observe(domain.AdmissionDuplicate)
	s.log.Info().Str("deal_id", dealID).Msg("duplicate deal rejected")
	return domain.AdmissionResult{Outcome: domain.AdmissionDuplicate}
}

func (s *DealServiceImpl) remember(ctx context.Context, dealID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Remember(ctx, dealID, s.cacheTTL); err != nil {
		s.log.Warn().Err(err).Str("deal_id", dealID).Msg("failed to cache deal id")
	}
}

func (s *DealServiceImpl) observe(outcome domain.AdmissionOutcome) {
	if s.recorder != nil {
		s.recorder.ObserveAdmission(outcome)
	}
}
