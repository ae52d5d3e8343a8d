//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"rebate-ledger/internal/domain/bundle"
	"rebate-ledger/internal/domain/ledger"
	"rebate-ledger/internal/domain/reward"
	"rebate-ledger/internal/infra/program"
	"rebate-ledger/internal/pkg/clock"
	"rebate-ledger/internal/pkg/errs"
	"rebate-ledger/internal/usecase/commands"
	"rebate-ledger/tests/common/builder"
	"rebate-ledger/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 9, 10, 15, 4, 5, 0, time.UTC)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func defaultProgram(t *testing.T) *program.Program {
	t.Helper()
	p, err := program.Default()
	require.NoError(t, err)
	return p
}

// =============================================================================
// Ledger Commands Tests
// =============================================================================

func TestLedgerCommands_AddEntry(t *testing.T) {
	ctx := context.Background()

	t.Run("new entry is prepended", func(t *testing.T) {
		store := dbtest.NewMemoryStore(t, 1<<20)
		owner := uuid.New()
		existing := builder.NewEntryBuilder().MustBuildDomain()
		store.SeedEntries(t, owner, existing)

		uc := commands.NewLedgerCommands(store.UoW, clock.NewMockClock(fixedNow))
		res, err := uc.AddEntry(ctx, owner, commands.AddEntryRequest{
			Store: "Best Buy", Item: "LG Range", Savings: d(250), Fee: d(5), Date: "2024-09-01",
		})
		require.NoError(t, err)

		entries, err := store.Entries.List(ctx, owner)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, res.EntryID, entries[0].ID())
		assert.Equal(t, existing.ID(), entries[1].ID())
	})

	t.Run("empty date defaults to today", func(t *testing.T) {
		store := dbtest.NewMemoryStore(t, 1<<20)
		owner := uuid.New()

		uc := commands.NewLedgerCommands(store.UoW, clock.NewMockClock(fixedNow))
		_, err := uc.AddEntry(ctx, owner, commands.AddEntryRequest{Store: "s", Item: "i", Savings: d(1)})
		require.NoError(t, err)

		entries, err := store.Entries.List(ctx, owner)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "2024-09-10", entries[0].Date())
	})

	t.Run("fee over savings leaves ledger untouched", func(t *testing.T) {
		store := dbtest.NewMemoryStore(t, 1<<20)
		owner := uuid.New()

		uc := commands.NewLedgerCommands(store.UoW, clock.NewMockClock(fixedNow))
		_, err := uc.AddEntry(ctx, owner, commands.AddEntryRequest{Store: "s", Item: "i", Savings: d(10), Fee: d(20)})
		require.ErrorIs(t, err, ledger.ErrFeeExceedsSavings)

		entries, err := store.Entries.List(ctx, owner)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("capacity failure keeps previous entries", func(t *testing.T) {
		store := dbtest.NewMemoryStore(t, 400)
		owner := uuid.New()
		existing := builder.NewEntryBuilder().MustBuildDomain()
		store.SeedEntries(t, owner, existing)

		big := "data:image/jpeg;base64," + string(make([]byte, 500))
		uc := commands.NewLedgerCommands(store.UoW, clock.NewMockClock(fixedNow))
		_, err := uc.AddEntry(ctx, owner, commands.AddEntryRequest{
			Store: "s", Item: "i", Savings: d(1), Date: "2024-01-01", Receipt: &big,
		})
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrCapacityExceeded))

		entries, err := store.Entries.List(ctx, owner)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, existing.ID(), entries[0].ID())
	})
}

func TestLedgerCommands_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	store := dbtest.NewMemoryStore(t, 1<<20)
	owner := uuid.New()

	a := builder.NewEntryBuilder().WithStore("A").MustBuildDomain()
	b := builder.NewEntryBuilder().WithStore("B").MustBuildDomain()
	c := builder.NewEntryBuilder().WithStore("C").MustBuildDomain()
	store.SeedEntries(t, owner, a, b, c)

	uc := commands.NewLedgerCommands(store.UoW, clock.NewMockClock(fixedNow))

	require.NoError(t, uc.DeleteEntry(ctx, owner, b.ID()))
	entries, err := store.Entries.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, a.ID(), entries[0].ID())
	assert.Equal(t, c.ID(), entries[1].ID())

	err = uc.DeleteEntry(ctx, owner, "missing")
	require.ErrorIs(t, err, ledger.ErrEntryNotFound)
	assert.True(t, errs.Is(err, errs.ErrNotFound))

	require.NoError(t, uc.ClearEntries(ctx, owner))
	entries, err = store.Entries.List(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// =============================================================================
// Reward Commands Tests
// =============================================================================

func TestRewardCommands_Redeem(t *testing.T) {
	ctx := context.Background()
	prog := defaultProgram(t)

	t.Run("unlocked prize is recorded with snapshots", func(t *testing.T) {
		store := dbtest.NewMemoryStore(t, 1<<20)
		owner := uuid.New()
		store.SeedEntries(t, owner, builder.NewEntryBuilder().WithAmounts(600, 50).MustBuildDomain())

		uc := commands.NewRewardCommands(store.UoW, prog.Prizes, clock.NewMockClock(fixedNow))
		res, err := uc.Redeem(ctx, owner, "starter_bonus")
		require.NoError(t, err)
		assert.Equal(t, "Starter Bonus", res.PrizeName)

		history, err := store.Redemptions.List(ctx, owner)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, res.RedemptionID, history[0].ID())
		assert.True(t, d(500).Equal(history[0].TierTarget()))
		assert.True(t, fixedNow.Equal(history[0].RedeemedAt()))
	})

	t.Run("second redemption fails and history is unchanged", func(t *testing.T) {
		store := dbtest.NewMemoryStore(t, 1<<20)
		owner := uuid.New()
		store.SeedEntries(t, owner, builder.NewEntryBuilder().WithAmounts(600, 0).MustBuildDomain())

		uc := commands.NewRewardCommands(store.UoW, prog.Prizes, clock.NewMockClock(fixedNow))
		_, err := uc.Redeem(ctx, owner, "starter_bonus")
		require.NoError(t, err)

		_, err = uc.Redeem(ctx, owner, "starter_bonus")
		require.ErrorIs(t, err, reward.ErrAlreadyRedeemed)

		history, err := store.Redemptions.List(ctx, owner)
		require.NoError(t, err)
		assert.Len(t, history, 1)
	})

	t.Run("locked prize produces no record", func(t *testing.T) {
		store := dbtest.NewMemoryStore(t, 1<<20)
		owner := uuid.New()
		store.SeedEntries(t, owner, builder.NewEntryBuilder().WithAmounts(1600, 200).MustBuildDomain())

		uc := commands.NewRewardCommands(store.UoW, prog.Prizes, clock.NewMockClock(fixedNow))
		_, err := uc.Redeem(ctx, owner, "saver_gift")
		require.ErrorIs(t, err, reward.ErrPrizeLocked)

		history, err := store.Redemptions.List(ctx, owner)
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("unknown prize", func(t *testing.T) {
		store := dbtest.NewMemoryStore(t, 1<<20)

		uc := commands.NewRewardCommands(store.UoW, prog.Prizes, clock.NewMockClock(fixedNow))
		_, err := uc.Redeem(ctx, uuid.New(), "golden_ticket")
		require.ErrorIs(t, err, reward.ErrPrizeNotFound)
	})

	t.Run("clear redemptions", func(t *testing.T) {
		store := dbtest.NewMemoryStore(t, 1<<20)
		owner := uuid.New()
		store.SeedRedemptions(t, owner, reward.ReconstructRedemption("r", "starter_bonus", "Starter Bonus", d(500), fixedNow))

		uc := commands.NewRewardCommands(store.UoW, prog.Prizes, clock.NewMockClock(fixedNow))
		require.NoError(t, uc.ClearRedemptions(ctx, owner))

		history, err := store.Redemptions.List(ctx, owner)
		require.NoError(t, err)
		assert.Empty(t, history)
	})
}

// =============================================================================
// Bundle Commands Tests
// =============================================================================

func TestBundleCommands(t *testing.T) {
	ctx := context.Background()
	prog := defaultProgram(t)

	t.Run("save prepends and returns quote", func(t *testing.T) {
		store := dbtest.NewMemoryStore(t, 1<<20)
		owner := uuid.New()
		uc := commands.NewBundleCommands(store.UoW, prog.Catalog, clock.NewMockClock(fixedNow))

		first, err := uc.SaveBundle(ctx, owner, commands.SaveBundleRequest{
			Manufacturer: "Whirlpool", Category: "Appliances",
			SKUs: []string{"WH-DW-03", "WH-MW-04"}, Discount: d(100), Fee: d(25),
		})
		require.NoError(t, err)
		assert.True(t, d(1275).Equal(first.Quote.Total))

		second, err := uc.SaveBundle(ctx, owner, commands.SaveBundleRequest{
			Manufacturer: "LG", Category: "Appliances", SKUs: []string{"LG-DW-04"},
		})
		require.NoError(t, err)

		history, err := store.Bundles.List(ctx, owner)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, second.BundleID, history[0].ID())
		assert.Equal(t, first.BundleID, history[1].ID())
	})

	t.Run("empty selection is rejected without a record", func(t *testing.T) {
		store := dbtest.NewMemoryStore(t, 1<<20)
		owner := uuid.New()
		uc := commands.NewBundleCommands(store.UoW, prog.Catalog, clock.NewMockClock(fixedNow))

		_, err := uc.SaveBundle(ctx, owner, commands.SaveBundleRequest{Manufacturer: "LG", Category: "Appliances"})
		require.ErrorIs(t, err, bundle.ErrEmptySelection)

		history, err := store.Bundles.List(ctx, owner)
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("clear bundles", func(t *testing.T) {
		store := dbtest.NewMemoryStore(t, 1<<20)
		owner := uuid.New()
		uc := commands.NewBundleCommands(store.UoW, prog.Catalog, clock.NewMockClock(fixedNow))

		_, err := uc.SaveBundle(ctx, owner, commands.SaveBundleRequest{
			Manufacturer: "Samsung", Category: "Appliances", SKUs: []string{"SA-DRY-04"},
		})
		require.NoError(t, err)
		require.NoError(t, uc.ClearBundles(ctx, owner))

		history, err := store.Bundles.List(ctx, owner)
		require.NoError(t, err)
		assert.Empty(t, history)
	})
}
