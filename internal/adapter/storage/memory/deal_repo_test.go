package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"fx-deals/internal/core/domain"
	"fx-deals/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeal(id, from, to string, ts time.Time) *domain.Deal {
	return &domain.Deal{
		DealID:       id,
		FromCurrency: from,
		ToCurrency:   to,
		Amount:       decimal.NewFromInt(100),
		Timestamp:    ts,
	}
}

func TestDealRepo_SaveAndGet(t *testing.T) {
	repo := NewDealRepo()
	ctx := context.Background()

	stored, err := repo.Save(ctx, newDeal("D1", "USD", "EUR", time.Time{}))
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.ID)
	assert.False(t, stored.Timestamp.IsZero())

	exists, err := repo.ExistsByDealID(ctx, "D1")
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := repo.GetByDealID(ctx, "D1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, stored.ID, got.ID)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(100)))

	missing, err := repo.GetByDealID(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDealRepo_SaveDuplicate(t *testing.T) {
	repo := NewDealRepo()
	ctx := context.Background()

	_, err := repo.Save(ctx, newDeal("D1", "USD", "EUR", time.Now()))
	require.NoError(t, err)

	_, err = repo.Save(ctx, newDeal("D1", "GBP", "JPY", time.Now()))
	assert.ErrorIs(t, err, domain.ErrDealExists)

	got, _ := repo.GetByDealID(ctx, "D1")
	assert.Equal(t, "USD", got.FromCurrency, "first write wins")

	n, _ := repo.Count(ctx)
	assert.Equal(t, int64(1), n)
}

func TestDealRepo_ConcurrentSaveSameDealID(t *testing.T) {
	repo := NewDealRepo()
	ctx := context.Background()

	var saved, dup atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Save(ctx, newDeal("RACE", "USD", "EUR", time.Now()))
			if err == nil {
				saved.Add(1)
			} else if err == domain.ErrDealExists {
				dup.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), saved.Load())
	assert.Equal(t, int32(49), dup.Load())
}

func TestDealRepo_List(t *testing.T) {
	repo := NewDealRepo()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		_, err := repo.Save(ctx, newDeal(fmt.Sprintf("U%d", i), "USD", "EUR", base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}
	_, err := repo.Save(ctx, newDeal("G0", "GBP", "USD", base))
	require.NoError(t, err)

	t.Run("newest first with pagination", func(t *testing.T) {
		deals, total, err := repo.List(ctx, ports.DealListParams{Page: 1, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(6), total)
		require.Len(t, deals, 2)
		assert.Equal(t, "U4", deals[0].DealID)
		assert.Equal(t, "U3", deals[1].DealID)
	})

	t.Run("currency filter", func(t *testing.T) {
		deals, total, err := repo.List(ctx, ports.DealListParams{FromCurrency: "GBP", Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, deals, 1)
		assert.Equal(t, "G0", deals[0].DealID)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		deals, total, err := repo.List(ctx, ports.DealListParams{Page: 10, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(6), total)
		assert.NotNil(t, deals)
		assert.Empty(t, deals)
	})
}
