package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fx-deals/internal/core/domain"
	"fx-deals/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const uniqueViolation = "23505"

const dealColumns = `id, deal_id, from_currency, to_currency, amount::text, created_at`

// DealRepo implements ports.DealRepository.
type DealRepo struct {
	pool Pool
}

// NewDealRepo creates a new DealRepo.
func NewDealRepo(pool Pool) *DealRepo {
	return &DealRepo{pool: pool}
}

// ExistsByDealID checks whether a deal with the business key is stored.
func (r *DealRepo) ExistsByDealID(ctx context.Context, dealID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM deals WHERE deal_id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, dealID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check deal exists: %w", err)
	}
	return exists, nil
}

// Save inserts the deal unless the deal_id is taken. The insert and the
// uniqueness check happen in one statement, so a concurrent writer that won
// the race yields domain.ErrDealExists instead of a second row.
func (r *DealRepo) Save(ctx context.Context, deal *domain.Deal) (*domain.Deal, error) {
	query := `INSERT INTO deals (deal_id, from_currency, to_currency, amount, created_at)
		VALUES ($1, $2, $3, $4::numeric, $5)
		ON CONFLICT (deal_id) DO NOTHING
		RETURNING id, created_at`

	ts := deal.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	stored := *deal
	err := r.pool.QueryRow(ctx, query,
		deal.DealID, deal.FromCurrency, deal.ToCurrency, deal.Amount.String(), ts,
	).Scan(&stored.ID, &stored.Timestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
			return nil, domain.ErrDealExists
		}
		return nil, fmt.Errorf("insert deal: %w", err)
	}
	return &stored, nil
}

// GetByDealID fetches a deal by business key. Returns nil, nil when absent.
func (r *DealRepo) GetByDealID(ctx context.Context, dealID string) (*domain.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE deal_id = $1`

	return r.scanDeal(r.pool.QueryRow(ctx, query, dealID))
}

// List fetches deals newest first with optional currency filters.
func (r *DealRepo) List(ctx context.Context, params ports.DealListParams) ([]domain.Deal, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.FromCurrency != "" {
		conditions = append(conditions, fmt.Sprintf("from_currency = $%d", argIdx))
		args = append(args, params.FromCurrency)
		argIdx++
	}
	if params.ToCurrency != "" {
		conditions = append(conditions, fmt.Sprintf("to_currency = $%d", argIdx))
		args = append(args, params.ToCurrency)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM deals %s", where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count deals: %w", err)
	}

	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT %s FROM deals %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		dealColumns, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list deals: %w", err)
	}
	defer rows.Close()

	deals := []domain.Deal{}
	for rows.Next() {
		d, err := scanDealRow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan deal row: %w", err)
		}
		deals = append(deals, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate deal rows: %w", err)
	}
	return deals, total, nil
}

// Count returns the number of stored deals.
func (r *DealRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM deals`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count deals: %w", err)
	}
	return n, nil
}

func (r *DealRepo) scanDeal(row pgx.Row) (*domain.Deal, error) {
	d, err := scanDealRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan deal: %w", err)
	}
	return d, nil
}

func scanDealRow(row pgx.Row) (*domain.Deal, error) {
	d := &domain.Deal{}
	var amount string
	if err := row.Scan(&d.ID, &d.DealID, &d.FromCurrency, &d.ToCurrency, &amount, &d.Timestamp); err != nil {
		return nil, err
	}
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	d.Amount = parsed
	return d, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
