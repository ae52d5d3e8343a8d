//go:build e2e

package ledger_test

import (
	"fmt"
	"net/http"
	"testing"

	"rebate-ledger/internal/handler/dto/response"
	"rebate-ledger/tests/common/authtest"
	"rebate-ledger/tests/common/builder"
	"rebate-ledger/tests/common/dbtest"
	"rebate-ledger/tests/common/httptest"
	"rebate-ledger/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	entriesURL     = "/api/entries"
	dashboardURL   = "/api/dashboard"
	rewardsURL     = "/api/rewards"
	redeemURL      = "/api/rewards/%s/redeem"
	redemptionsURL = "/api/redemptions"
	bundlesURL     = "/api/bundles"
	quoteURL       = "/api/bundles/quote"
)

type LedgerSuite struct {
	e2e.SharedSuite
}

func TestLedgerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(LedgerSuite))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (s *LedgerSuite) addEntry(token string, b *builder.EntryBuilder) string {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, entriesURL, b.BuildDTO(), token)
	var created response.CreateEntryResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	require.NotEmpty(t, created.ID)
	return created.ID
}

// =============================================================================
// TestLedgerFlow - entries, dashboard totals and persistence
// =============================================================================

func (s *LedgerSuite) TestLedgerFlow() {
	s.Run("Normal case: entries add up on the dashboard", func() {
		t := s.T()
		session := authtest.StartSession(t, s.Router)

		s.addEntry(session.Token, builder.NewEntryBuilder().WithAmounts(400, 20).WithDate("2024-03-01"))
		latest := s.addEntry(session.Token, builder.NewEntryBuilder().WithItem("LG Washer").WithAmounts(150, 10).WithDate("2024-03-02"))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, dashboardURL, nil, session.Token)
		var dash response.DashboardResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &dash)

		assert.True(t, dash.GrossSavings.Equal(dec("550")), dash.GrossSavings.String())
		assert.True(t, dash.TotalFees.Equal(dec("30")), dash.TotalFees.String())
		assert.True(t, dash.NetSavings.Equal(dec("520")), dash.NetSavings.String())
		assert.Equal(t, 2, dash.EntryCount)
		assert.Equal(t, "Starter", dash.Progress.CurrentTier)
		assert.True(t, dash.Progress.NextTarget.Equal(dec("1500")))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, entriesURL, nil, session.Token)
		var list response.EntryListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Equal(t, 2, list.Count)
		assert.Equal(t, latest, list.Entries[0].ID, "newest entry comes first")

		assert.Equal(t, 1, dbtest.CountLists(t, s.DB, session.OwnerID))
	})

	s.Run("Normal case: a resumed session sees the same ledger", func() {
		t := s.T()
		session := authtest.StartSession(t, s.Router)
		s.addEntry(session.Token, builder.NewEntryBuilder())

		resumed := authtest.ResumeSession(t, s.Router, session.OwnerID)
		require.Equal(t, session.OwnerID, resumed.OwnerID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, entriesURL, nil, resumed.Token)
		var list response.EntryListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		assert.Equal(t, 1, list.Count)
	})

	s.Run("Normal case: owners are isolated", func() {
		t := s.T()
		alice := authtest.StartSession(t, s.Router)
		bob := authtest.StartSession(t, s.Router)
		s.addEntry(alice.Token, builder.NewEntryBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, entriesURL, nil, bob.Token)
		var list response.EntryListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		assert.Equal(t, 0, list.Count)
		assert.Equal(t, 0, dbtest.CountLists(t, s.DB, bob.OwnerID))
	})

	s.Run("Normal case: delete and clear entries", func() {
		t := s.T()
		session := authtest.StartSession(t, s.Router)
		id := s.addEntry(session.Token, builder.NewEntryBuilder())
		s.addEntry(session.Token, builder.NewEntryBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, entriesURL+"/"+id, nil, session.Token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, entriesURL+"/"+id, nil, session.Token)
		require.Equal(t, http.StatusNotFound, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, entriesURL, nil, session.Token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, dashboardURL, nil, session.Token)
		var dash response.DashboardResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &dash)
		assert.Equal(t, 0, dash.EntryCount)
		assert.True(t, dash.NetSavings.IsZero())
	})

	s.Run("Abnormal case: invalid entry is rejected", func() {
		t := s.T()
		session := authtest.StartSession(t, s.Router)
		body := builder.NewEntryBuilder().With(func(b *builder.EntryBuilder) {
			b.Savings = dec("-5")
		}).BuildDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, entriesURL, body, session.Token)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("Abnormal case: requests without a valid token are rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, dashboardURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")

		expired := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(t, uuid.New())
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, dashboardURL, nil, expired)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

// =============================================================================
// TestRewardFlow - redemption against net savings
// =============================================================================

func (s *LedgerSuite) TestRewardFlow() {
	s.Run("Normal case: unlocked prize can be redeemed once", func() {
		t := s.T()
		session := authtest.StartSession(t, s.Router)
		s.addEntry(session.Token, builder.NewEntryBuilder().WithAmounts(600, 50))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(redeemURL, "starter_bonus"), nil, session.Token)
		var redeemed response.RedeemResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &redeemed)
		assert.Equal(t, "starter_bonus", redeemed.PrizeID)
		assert.Equal(t, "Starter Bonus", redeemed.PrizeName)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(redeemURL, "starter_bonus"), nil, session.Token)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, rewardsURL, nil, session.Token)
		var overview response.RewardsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &overview)
		assert.Equal(t, 1, overview.Unlocked)
		assert.Equal(t, 1, overview.Redeemed)
		assert.Equal(t, 0, overview.Available)
		require.Len(t, overview.History, 1)

		assert.Equal(t, 2, dbtest.CountLists(t, s.DB, session.OwnerID))
	})

	s.Run("Abnormal case: locked prize cannot be redeemed", func() {
		t := s.T()
		session := authtest.StartSession(t, s.Router)
		s.addEntry(session.Token, builder.NewEntryBuilder().WithAmounts(600, 50))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(redeemURL, "elite_pack"), nil, session.Token)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("Abnormal case: unknown prize", func() {
		t := s.T()
		session := authtest.StartSession(t, s.Router)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(redeemURL, "nope"), nil, session.Token)
		assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Normal case: clearing history frees the prize again", func() {
		t := s.T()
		session := authtest.StartSession(t, s.Router)
		s.addEntry(session.Token, builder.NewEntryBuilder().WithAmounts(600, 50))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(redeemURL, "starter_bonus"), nil, session.Token)
		require.Equal(t, http.StatusCreated, w.Code)
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, redemptionsURL, nil, session.Token)
		require.Equal(t, http.StatusNoContent, w.Code)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(redeemURL, "starter_bonus"), nil, session.Token)
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestBundleFlow - quote, save and list bundles
// =============================================================================

func (s *LedgerSuite) TestBundleFlow() {
	s.Run("Normal case: quote matches the saved bundle", func() {
		t := s.T()
		session := authtest.StartSession(t, s.Router)
		body := builder.NewBundleBuilder().BuildDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, body, session.Token)
		var quote response.QuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &quote)
		assert.Equal(t, 2, quote.Count)
		assert.True(t, quote.Subtotal.Equal(dec("1350")), quote.Subtotal.String())
		assert.True(t, quote.Total.Equal(dec("1275")), quote.Total.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bundlesURL, body, session.Token)
		var saved response.SaveBundleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &saved)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bundlesURL, nil, session.Token)
		var list response.BundleListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list.Bundles, 1)

		got := list.Bundles[0]
		assert.Equal(t, saved.ID, got.ID)
		skus := make([]string, 0, len(got.Items))
		for _, item := range got.Items {
			skus = append(skus, item.SKU)
		}
		if diff := cmp.Diff([]string{"WH-DW-03", "WH-MW-04"}, skus); diff != "" {
			t.Errorf("bundle items mismatch (-want +got):\n%s", diff)
		}
		assert.True(t, got.Total.Equal(quote.Total))
	})

	s.Run("Abnormal case: empty selection is rejected", func() {
		t := s.T()
		session := authtest.StartSession(t, s.Router)
		body := builder.NewBundleBuilder().WithSKUs("NOT-A-SKU").BuildDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bundlesURL, body, session.Token)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
		assert.Equal(t, 0, dbtest.CountLists(t, s.DB, session.OwnerID))
	})
}
