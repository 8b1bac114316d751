package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"fx-deals/internal/core/domain"
	"fx-deals/internal/core/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeal(dealID string) *domain.Deal {
	return &domain.Deal{
		DealID:       dealID,
		FromCurrency: "USD",
		ToCurrency:   "EUR",
		Amount:       decimal.RequireFromString("150.50"),
		Timestamp:    time.Now().UTC().Truncate(time.Microsecond),
	}
}

func dealColumnNames() []string {
	return []string{"id", "deal_id", "from_currency", "to_currency", "amount", "created_at"}
}

func dealRow(rows *pgxmock.Rows, id int64, d *domain.Deal) *pgxmock.Rows {
	return rows.AddRow(id, d.DealID, d.FromCurrency, d.ToCurrency, d.Amount.String(), d.Timestamp)
}

func TestDealRepo_ExistsByDealID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDealRepo(mock)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("D100").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByDealID(context.Background(), "D100")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepo_ExistsByDealID_DBError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDealRepo(mock)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("D100").
		WillReturnError(errors.New("connection reset"))

	_, err = repo.ExistsByDealID(context.Background(), "D100")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check deal exists")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepo_Save(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDealRepo(mock)
	deal := newTestDeal("D100")

	mock.ExpectQuery("(?s)INSERT INTO deals .+ ON CONFLICT \\(deal_id\\) DO NOTHING").
		WithArgs(deal.DealID, deal.FromCurrency, deal.ToCurrency, "150.5", deal.Timestamp).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), deal.Timestamp))

	stored, err := repo.Save(context.Background(), deal)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, int64(42), stored.ID)
	assert.Equal(t, "D100", stored.DealID)
	assert.Equal(t, deal.Timestamp, stored.Timestamp)
	assert.Zero(t, deal.ID, "input deal must not be mutated")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepo_Save_DefaultsTimestamp(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDealRepo(mock)
	deal := newTestDeal("D101")
	deal.Timestamp = time.Time{}
	now := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO deals").
		WithArgs(deal.DealID, deal.FromCurrency, deal.ToCurrency, "150.5", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), now))

	stored, err := repo.Save(context.Background(), deal)
	require.NoError(t, err)
	assert.Equal(t, now, stored.Timestamp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepo_Save_ConflictReturnsErrDealExists(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDealRepo(mock)
	deal := newTestDeal("D100")

	// ON CONFLICT DO NOTHING returns no row.
	mock.ExpectQuery("INSERT INTO deals").
		WithArgs(deal.DealID, deal.FromCurrency, deal.ToCurrency, "150.5", deal.Timestamp).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}))

	stored, err := repo.Save(context.Background(), deal)
	assert.Nil(t, stored)
	assert.ErrorIs(t, err, domain.ErrDealExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepo_Save_UniqueViolationReturnsErrDealExists(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDealRepo(mock)
	deal := newTestDeal("D100")

	mock.ExpectQuery("INSERT INTO deals").
		WithArgs(deal.DealID, deal.FromCurrency, deal.ToCurrency, "150.5", deal.Timestamp).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "deals_deal_id_key"})

	_, err = repo.Save(context.Background(), deal)
	assert.ErrorIs(t, err, domain.ErrDealExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepo_Save_OtherError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDealRepo(mock)
	deal := newTestDeal("D100")

	mock.ExpectQuery("INSERT INTO deals").
		WithArgs(deal.DealID, deal.FromCurrency, deal.ToCurrency, "150.5", deal.Timestamp).
		WillReturnError(errors.New("disk full"))

	_, err = repo.Save(context.Background(), deal)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrDealExists)
	assert.Contains(t, err.Error(), "insert deal")
}

func TestDealRepo_GetByDealID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDealRepo(mock)
	deal := newTestDeal("D100")

	mock.ExpectQuery("SELECT .+ FROM deals WHERE deal_id").
		WithArgs("D100").
		WillReturnRows(dealRow(pgxmock.NewRows(dealColumnNames()), 9, deal))

	result, err := repo.GetByDealID(context.Background(), "D100")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int64(9), result.ID)
	assert.Equal(t, "D100", result.DealID)
	assert.True(t, deal.Amount.Equal(result.Amount))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepo_GetByDealID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDealRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM deals WHERE deal_id").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(dealColumnNames()))

	result, err := repo.GetByDealID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepo_List_WithFilters(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDealRepo(mock)
	d1 := newTestDeal("D1")
	d2 := newTestDeal("D2")

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM deals WHERE from_currency = \\$1 AND to_currency = \\$2").
		WithArgs("USD", "EUR").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(12)))

	rows := pgxmock.NewRows(dealColumnNames())
	dealRow(rows, 2, d2)
	dealRow(rows, 1, d1)
	mock.ExpectQuery("SELECT .+ FROM deals WHERE .+ ORDER BY created_at DESC, id DESC LIMIT \\$3 OFFSET \\$4").
		WithArgs("USD", "EUR", 2, 2).
		WillReturnRows(rows)

	deals, total, err := repo.List(context.Background(), ports.DealListParams{
		FromCurrency: "USD", ToCurrency: "EUR", Page: 2, PageSize: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	require.Len(t, deals, 2)
	assert.Equal(t, "D2", deals[0].DealID)
	assert.Equal(t, "D1", deals[1].DealID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepo_List_NoFilters(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDealRepo(mock)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM deals").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery("SELECT .+ FROM deals +ORDER BY").
		WithArgs(20, 0).
		WillReturnRows(pgxmock.NewRows(dealColumnNames()))

	deals, total, err := repo.List(context.Background(), ports.DealListParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, deals)
	assert.NotNil(t, deals)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepo_Count(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDealRepo(mock)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM deals").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
