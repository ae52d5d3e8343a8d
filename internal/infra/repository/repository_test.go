//go:build unit

package repository_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"rebate-ledger/internal/domain/bundle"
	"rebate-ledger/internal/domain/ledger"
	"rebate-ledger/internal/domain/reward"
	"rebate-ledger/internal/infra"
	"rebate-ledger/internal/infra/kvstore"
	"rebate-ledger/internal/infra/repository"
	"rebate-ledger/internal/pkg/errs"
	"rebate-ledger/tests/common/builder"
	repositorymock "rebate-ledger/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newListStore() (*kvstore.ListStore, *kvstore.MemoryBackend) {
	b := kvstore.NewMemoryBackend()
	return kvstore.NewListStore(b, 1<<20, discardLogger()), b
}

// =============================================================================
// Entry Repository Tests
// =============================================================================

func TestEntryRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	lists, _ := newListStore()
	repo := repository.NewEntryRepository(lists, discardLogger())
	owner := uuid.New()

	withReceipt := builder.NewEntryBuilder().WithReceipt("data:image/jpeg;base64,AAAA").MustBuildDomain()
	plain := builder.NewEntryBuilder().WithStore("Lowe's").WithAmounts(99, 9).MustBuildDomain()

	require.NoError(t, repo.Replace(ctx, owner, []*ledger.Entry{withReceipt, plain}))

	got, err := repo.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, withReceipt.ID(), got[0].ID())
	require.NotNil(t, got[0].Receipt())
	assert.Equal(t, "data:image/jpeg;base64,AAAA", *got[0].Receipt())
	assert.Equal(t, "Lowe's", got[1].Store())
	assert.True(t, decimal.NewFromInt(90).Equal(got[1].Net()))
	assert.Nil(t, got[1].Receipt())
}

func TestEntryRepository_LegacyData(t *testing.T) {
	ctx := context.Background()
	lists, backend := newListStore()
	repo := repository.NewEntryRepository(lists, discardLogger())
	owner := uuid.New()

	stored := `[
		{"id":"1","store":"Costco","item":"Oven","savings":120.5,"fee":0.5,"date":"2024-01-01","receiptDataUrl":null},
		{"id":"2","store":"Target","item":"Microwave","savings":"40","date":"2024-01-02"},
		{"id":"3","store":"Walmart","item":"Dryer","savings":"abc","fee":null,"date":"2024-01-03"},
		"not an entry",
		null,
		{"id":"4","store":"Sears","item":"Range","savings":10,"fee":2}
	]`
	require.NoError(t, backend.Save(ctx, owner.String()+"/"+repository.EntriesKey, []byte(stored)))

	got, err := repo.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, "120.5", got[0].Savings().String())
	assert.Equal(t, "0.5", got[0].Fee().String())
	assert.True(t, decimal.NewFromInt(40).Equal(got[1].Savings()))
	assert.True(t, got[1].Fee().IsZero())
	assert.True(t, got[2].Savings().IsZero())
	assert.Equal(t, "4", got[3].ID())

	assert.Equal(t, "170.5", ledger.ComputeTotals(got).Gross.String())
}

func TestEntryRepository_OwnerIsolation(t *testing.T) {
	ctx := context.Background()
	lists, _ := newListStore()
	repo := repository.NewEntryRepository(lists, discardLogger())
	alice, bob := uuid.New(), uuid.New()

	require.NoError(t, repo.Replace(ctx, alice, []*ledger.Entry{builder.NewEntryBuilder().MustBuildDomain()}))

	got, err := repo.List(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, repo.Clear(ctx, alice))
	got, err = repo.List(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEntryRepository_Errors(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	testCases := []struct {
		name         string
		setupMock    func(*repositorymock.MockListQueries)
		run          func(*repository.EntryRepository) error
		expectKind  infra.RepositoryErrorKind
		expectIs    error
		expectClass error
	}{
		{
			name: "error: load fails",
			setupMock: func(m *repositorymock.MockListQueries) {
				m.EXPECT().Get(ctx, gomock.Any()).Return(nil, errors.New("disk gone"))
			},
			run: func(r *repository.EntryRepository) error {
				_, err := r.List(ctx, owner)
				return err
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: save over quota",
			setupMock: func(m *repositorymock.MockListQueries) {
				m.EXPECT().Put(ctx, owner.String()+"/"+repository.EntriesKey, gomock.Any()).Return(kvstore.ErrCapacityExceeded)
			},
			run: func(r *repository.EntryRepository) error {
				return r.Replace(ctx, owner, []*ledger.Entry{builder.NewEntryBuilder().MustBuildDomain()})
			},
			expectKind:  infra.KindCapacity,
			expectIs:    kvstore.ErrCapacityExceeded,
			expectClass: errs.ErrCapacityExceeded,
		},
		{
			name: "error: clear fails",
			setupMock: func(m *repositorymock.MockListQueries) {
				m.EXPECT().Delete(ctx, gomock.Any()).Return(errors.New("locked"))
			},
			run: func(r *repository.EntryRepository) error {
				return r.Clear(ctx, owner)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mock := repositorymock.NewMockListQueries(ctrl)
			tc.setupMock(mock)

			err := tc.run(repository.NewEntryRepository(mock, discardLogger()))

			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind))
			if tc.expectIs != nil {
				require.ErrorIs(t, err, tc.expectIs)
			}
			if tc.expectClass != nil {
				assert.True(t, errs.Is(err, tc.expectClass))
				assert.False(t, errs.Is(err, errs.ErrValidation))
			}
		})
	}
}

// =============================================================================
// Redemption Repository Tests
// =============================================================================

func TestRedemptionRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	lists, _ := newListStore()
	repo := repository.NewRedemptionRepository(lists, discardLogger())
	owner := uuid.New()

	at := time.Date(2024, 2, 3, 4, 5, 6, 7000, time.UTC)
	history := []*reward.Redemption{
		reward.ReconstructRedemption("r2", "saver_gift", "Saver Prize", decimal.NewFromInt(1500), at),
		reward.ReconstructRedemption("r1", "starter_bonus", "Starter Bonus", decimal.NewFromInt(500), at.Add(-time.Hour)),
	}
	require.NoError(t, repo.Replace(ctx, owner, history))

	got, err := repo.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "saver_gift", got[0].PrizeID())
	assert.Equal(t, "Saver Prize", got[0].PrizeName())
	assert.True(t, decimal.NewFromInt(1500).Equal(got[0].TierTarget()))
	assert.True(t, at.Equal(got[0].RedeemedAt()))
	assert.Equal(t, "r1", got[1].ID())

	require.NoError(t, repo.Clear(ctx, owner))
	got, err = repo.List(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// =============================================================================
// Bundle Repository Tests
// =============================================================================

func TestBundleRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	lists, _ := newListStore()
	repo := repository.NewBundleRepository(lists, discardLogger())
	owner := uuid.New()

	catalog, err := bundle.NewCatalog([]bundle.Manufacturer{{Name: "LG", Categories: []bundle.Category{{
		Name: "Appliances",
		Items: []bundle.Item{
			{SKU: "LG-OVEN-01", Name: "LG Oven", Price: decimal.NewFromInt(1550)},
			{SKU: "LG-DW-04", Name: "LG Dishwasher", Price: decimal.NewFromInt(880)},
		},
	}}}})
	require.NoError(t, err)

	now := time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC)
	b, err := bundle.NewBundle(catalog, "LG", "Appliances", []string{"LG-OVEN-01", "LG-DW-04"}, decimal.NewFromInt(200), decimal.NewFromInt(30), now)
	require.NoError(t, err)

	require.NoError(t, repo.Replace(ctx, owner, []*bundle.Bundle{b}))

	got, err := repo.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, b.ID(), got[0].ID())
	assert.Equal(t, "LG", got[0].Manufacturer())
	assert.True(t, now.Equal(got[0].CreatedAt()))
	require.Len(t, got[0].Items(), 2)
	assert.Equal(t, "LG-OVEN-01", got[0].Items()[0].SKU)
	assert.Equal(t, 2, got[0].Quote().Count)
	assert.True(t, decimal.NewFromInt(2430).Equal(got[0].Quote().Subtotal))
	assert.True(t, decimal.NewFromInt(2260).Equal(got[0].Quote().Total))
}
