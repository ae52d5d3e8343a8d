package api

import (
	"errors"
	"net/http"

	reqdto "rebate-ledger/internal/handler/dto/request"
	resdto "rebate-ledger/internal/handler/dto/response"
	"rebate-ledger/internal/handler/httperr"
	"rebate-ledger/internal/usecase/commands"
	"rebate-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LedgerHandler struct {
	cmds commands.LedgerCommands
	q    queries.LedgerQueries
}

func NewLedgerHandler(cmds commands.LedgerCommands, q queries.LedgerQueries) *LedgerHandler {
	return &LedgerHandler{cmds: cmds, q: q}
}

// @Summary Dashboard
// @Description Totals, entry count and tier progress for the current owner
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Failure 401 {object} httperr.Response
// @Router /api/dashboard [get]
func (h *LedgerHandler) Dashboard(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	view, err := h.q.Dashboard(c.Request.Context(), owner)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboardView(view))
}

// @Summary List entries
// @Description Ledger entries, newest first, optionally filtered by store or item
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param q query string false "Case-insensitive store/item filter"
// @Success 200 {object} resdto.EntryListResponse
// @Failure 401 {object} httperr.Response
// @Router /api/entries [get]
func (h *LedgerHandler) ListEntries(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	views, err := h.q.ListEntries(c.Request.Context(), owner, c.Query("q"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEntryList(views))
}

// @Summary Get entry
// @Description A single entry including its receipt photo
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} resdto.EntryResponse
// @Failure 404 {object} httperr.Response
// @Router /api/entries/{id} [get]
func (h *LedgerHandler) GetEntry(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	view, err := h.q.GetEntry(c.Request.Context(), owner, c.Param("id"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEntryView(view))
}

// @Summary Add entry
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEntryRequest true "Entry"
// @Success 201 {object} resdto.CreateEntryResponse
// @Failure 400 {object} httperr.Response
// @Failure 413 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 507 {object} httperr.Response
// @Router /api/entries [post]
func (h *LedgerHandler) CreateEntry(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	var req reqdto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, httperr.StorageFullMessage, nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.AddEntry(c.Request.Context(), owner, req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateEntryResponse{ID: result.EntryID})
}

// @Summary Delete entry
// @Tags ledger
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/entries/{id} [delete]
func (h *LedgerHandler) DeleteEntry(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteEntry(c.Request.Context(), owner, c.Param("id")); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Clear entries
// @Tags ledger
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /api/entries [delete]
func (h *LedgerHandler) ClearEntries(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	if err := h.cmds.ClearEntries(c.Request.Context(), owner); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
