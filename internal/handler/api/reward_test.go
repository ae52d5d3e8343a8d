//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"rebate-ledger/internal/domain/reward"
	"rebate-ledger/internal/handler/api"
	resdto "rebate-ledger/internal/handler/dto/response"
	"rebate-ledger/internal/handler/httperr"
	"rebate-ledger/internal/infra/kvstore"
	"rebate-ledger/internal/usecase/commands"
	"rebate-ledger/internal/usecase/queries"
	"rebate-ledger/tests/common/httptest"
	commandsmock "rebate-ledger/tests/mock/commands"
	queriesmock "rebate-ledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RewardHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRewardCommands
	mockQueries  *queriesmock.MockRewardQueries
	owner        uuid.UUID
}

func (s *RewardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.owner = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRewardCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRewardQueries(s.mockCtrl)
	h := api.NewRewardHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/api", withOwner(s.owner))
	g.GET("/rewards", h.Overview)
	g.POST("/rewards/:prizeId/redeem", h.Redeem)
	g.DELETE("/redemptions", h.ClearRedemptions)
}

func (s *RewardHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRewardHandlerSuite(t *testing.T) {
	suite.Run(t, new(RewardHandlerTestSuite))
}

func (s *RewardHandlerTestSuite) TestOverview() {
	redeemedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.mockQueries.EXPECT().Overview(gomock.Any(), s.owner).Return(&queries.RewardsOverview{
		NetSavings: decimal.NewFromInt(1600),
		Counts:     reward.Counts{Unlocked: 2, Redeemed: 1, Available: 1},
		Prizes: []queries.PrizeView{
			{ID: "starter_bonus", Name: "Starter Bonus", TierTarget: decimal.NewFromInt(500), Status: queries.PrizeStatusRedeemed},
			{ID: "saver_gift", Name: "Saver Prize", TierTarget: decimal.NewFromInt(1500), Status: queries.PrizeStatusReady},
		},
		History: []queries.RedemptionView{
			{ID: "r1", PrizeID: "starter_bonus", PrizeName: "Starter Bonus", TierTarget: decimal.NewFromInt(500), RedeemedAt: redeemedAt},
		},
	}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rewards", nil, "")

	var response resdto.RewardsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(2, response.Unlocked)
	s.Equal(1, response.Available)
	s.Require().Len(response.Prizes, 2)
	s.Equal(queries.PrizeStatusReady, response.Prizes[1].Status)
	s.Require().Len(response.History, 1)
	s.True(redeemedAt.Equal(response.History[0].Date))
}

func (s *RewardHandlerTestSuite) TestRedeem() {
	s.Run("success: returns 201", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), s.owner, "saver_gift").
			Return(&commands.RedeemResult{RedemptionID: "r2", PrizeID: "saver_gift", PrizeName: "Saver Prize"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/rewards/saver_gift/redeem", nil, "")

		var response resdto.RedeemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("r2", response.ID)
		s.Equal("Saver Prize", response.PrizeName)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name         string
			err          error
			expectCode   int
			expectInBody string
		}{
			{name: "unknown prize", err: reward.ErrPrizeNotFound, expectCode: http.StatusNotFound},
			{name: "locked prize", err: reward.ErrPrizeLocked, expectCode: http.StatusUnprocessableEntity, expectInBody: reward.ErrPrizeLocked.Error()},
			{name: "already redeemed", err: reward.ErrAlreadyRedeemed, expectCode: http.StatusUnprocessableEntity, expectInBody: reward.ErrAlreadyRedeemed.Error()},
			{name: "storage full", err: kvstore.ErrCapacityExceeded, expectCode: http.StatusInsufficientStorage, expectInBody: httperr.StorageFullMessage},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Redeem(gomock.Any(), s.owner, "p").Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/rewards/p/redeem", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
			})
		}
	})
}

func (s *RewardHandlerTestSuite) TestClearRedemptions() {
	s.mockCommands.EXPECT().ClearRedemptions(gomock.Any(), s.owner).Return(nil).Times(1)
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/redemptions", nil, "")
	s.Equal(http.StatusNoContent, rec.Code)
}
