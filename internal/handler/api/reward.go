package api

import (
	"net/http"

	resdto "rebate-ledger/internal/handler/dto/response"
	"rebate-ledger/internal/handler/httperr"
	"rebate-ledger/internal/usecase/commands"
	"rebate-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RewardHandler struct {
	cmds commands.RewardCommands
	q    queries.RewardQueries
}

func NewRewardHandler(cmds commands.RewardCommands, q queries.RewardQueries) *RewardHandler {
	return &RewardHandler{cmds: cmds, q: q}
}

// @Summary Rewards overview
// @Description Prize statuses, counts and redemption history
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RewardsResponse
// @Router /api/rewards [get]
func (h *RewardHandler) Overview(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	view, err := h.q.Overview(c.Request.Context(), owner)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRewardsOverview(view))
}

// @Summary Redeem prize
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Param prizeId path string true "Prize ID"
// @Success 201 {object} resdto.RedeemResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 507 {object} httperr.Response
// @Router /api/rewards/{prizeId}/redeem [post]
func (h *RewardHandler) Redeem(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	result, err := h.cmds.Redeem(c.Request.Context(), owner, c.Param("prizeId"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRedeemResult(result))
}

// @Summary Clear redemption history
// @Tags rewards
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /api/redemptions [delete]
func (h *RewardHandler) ClearRedemptions(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	if err := h.cmds.ClearRedemptions(c.Request.Context(), owner); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
