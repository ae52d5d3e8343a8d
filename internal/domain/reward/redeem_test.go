//go:build unit

package reward_test

import (
	"testing"
	"time"

	"rebate-ledger/internal/domain/reward"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func defaultCatalog(t *testing.T) *reward.Catalog {
	t.Helper()
	c, err := reward.NewCatalog([]reward.Prize{
		{ID: "starter_bonus", TierTarget: d(500), Name: "Starter Bonus", Detail: "Digital bonus entry / perk"},
		{ID: "saver_gift", TierTarget: d(1500), Name: "Saver Prize", Detail: "Gift card entry (demo)"},
		{ID: "super_draw", TierTarget: d(3000), Name: "Super Saver Draw", Detail: "Monthly prize draw entry (demo)"},
		{ID: "elite_pack", TierTarget: d(5000), Name: "Elite Prize Pack", Detail: "Premium prize pack (demo)"},
	})
	require.NoError(t, err)
	return c
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}

func TestCatalog(t *testing.T) {
	t.Run("duplicate prize id", func(t *testing.T) {
		_, err := reward.NewCatalog([]reward.Prize{{ID: "x"}, {ID: "x"}})
		require.ErrorIs(t, err, reward.ErrDuplicatePrizeID)
	})

	t.Run("find unknown prize", func(t *testing.T) {
		_, err := defaultCatalog(t).Find("nope")
		require.ErrorIs(t, err, reward.ErrPrizeNotFound)
	})

	t.Run("unlocked includes exact target", func(t *testing.T) {
		c := defaultCatalog(t)

		assert.Empty(t, c.Unlocked(d(499)))
		assert.ElementsMatch(t, []string{"starter_bonus"}, keys(c.Unlocked(d(500))))
		assert.ElementsMatch(t, []string{"starter_bonus", "saver_gift", "super_draw"}, keys(c.Unlocked(d(3200))))
	})
}

func TestRedeem(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("unlocked prize is prepended", func(t *testing.T) {
		c := defaultCatalog(t)
		starter, err := c.Find("starter_bonus")
		require.NoError(t, err)
		saver, err := c.Find("saver_gift")
		require.NoError(t, err)

		history, first, err := reward.Redeem(starter, d(1600), nil, now)
		require.NoError(t, err)
		history, second, err := reward.Redeem(saver, d(1600), history, now.Add(time.Minute))
		require.NoError(t, err)

		require.Len(t, history, 2)
		assert.Equal(t, second.ID(), history[0].ID())
		assert.Equal(t, first.ID(), history[1].ID())
		assert.Equal(t, "Saver Prize", second.PrizeName())
		assert.True(t, d(1500).Equal(second.TierTarget()))
		assert.Equal(t, now.Add(time.Minute), second.RedeemedAt())
	})

	t.Run("second redemption of the same prize fails", func(t *testing.T) {
		c := defaultCatalog(t)
		p, _ := c.Find("starter_bonus")

		history, _, err := reward.Redeem(p, d(600), nil, now)
		require.NoError(t, err)

		again, rec, err := reward.Redeem(p, d(600), history, now)
		require.ErrorIs(t, err, reward.ErrAlreadyRedeemed)
		assert.Nil(t, again)
		assert.Nil(t, rec)
		assert.Len(t, history, 1)
	})

	t.Run("locked prize fails without a record", func(t *testing.T) {
		c := defaultCatalog(t)
		p, _ := c.Find("elite_pack")

		history, rec, err := reward.Redeem(p, d(4999), nil, now)
		require.ErrorIs(t, err, reward.ErrPrizeLocked)
		assert.Nil(t, history)
		assert.Nil(t, rec)
	})
}

func TestSummarize(t *testing.T) {
	c := defaultCatalog(t)
	history := []*reward.Redemption{
		reward.ReconstructRedemption("r1", "starter_bonus", "Starter Bonus", d(500), time.Now()),
	}

	tests := []struct {
		name    string
		net     decimal.Decimal
		history []*reward.Redemption
		want    reward.Counts
	}{
		{name: "nothing unlocked", net: d(0), want: reward.Counts{}},
		{name: "two unlocked none redeemed", net: d(1500), want: reward.Counts{Unlocked: 2, Available: 2}},
		{name: "two unlocked one redeemed", net: d(1500), history: history, want: reward.Counts{Unlocked: 2, Redeemed: 1, Available: 1}},
		{
			name:    "redeemed prize relocked after entries removed",
			net:     d(100),
			history: history,
			want:    reward.Counts{Unlocked: 0, Redeemed: 1, Available: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Summarize(tt.net, tt.history))
		})
	}

	t.Run("available excludes redeemed", func(t *testing.T) {
		assert.ElementsMatch(t, []string{"saver_gift"}, keys(c.Available(d(2000), history)))
	})
}
