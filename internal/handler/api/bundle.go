package api

import (
	"net/http"

	reqdto "rebate-ledger/internal/handler/dto/request"
	resdto "rebate-ledger/internal/handler/dto/response"
	"rebate-ledger/internal/handler/httperr"
	"rebate-ledger/internal/usecase/commands"
	"rebate-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BundleHandler struct {
	cmds commands.BundleCommands
	q    queries.BundleQueries
}

func NewBundleHandler(cmds commands.BundleCommands, q queries.BundleQueries) *BundleHandler {
	return &BundleHandler{cmds: cmds, q: q}
}

// @Summary Bundle catalog
// @Description Manufacturers, their categories and items
// @Tags bundles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CatalogResponse
// @Router /api/catalog [get]
func (h *BundleHandler) Catalog(c *gin.Context) {
	resp, err := resdto.FromCatalog(h.q.Catalog(c.Request.Context()))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Quote bundle
// @Description Price a selection without saving it
// @Tags bundles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BundleSelectionRequest true "Selection"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bundles/quote [post]
func (h *BundleHandler) Quote(c *gin.Context) {
	var req reqdto.BundleSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	query, err := req.ToQuery()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	quote, err := h.q.Quote(c.Request.Context(), query)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}

// @Summary Save bundle
// @Tags bundles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BundleSelectionRequest true "Selection"
// @Success 201 {object} resdto.SaveBundleResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 507 {object} httperr.Response
// @Router /api/bundles [post]
func (h *BundleHandler) Save(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	var req reqdto.BundleSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.SaveBundle(c.Request.Context(), owner, cmd)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSaveBundleResult(result))
}

// @Summary List saved bundles
// @Tags bundles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BundleListResponse
// @Router /api/bundles [get]
func (h *BundleHandler) List(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	views, err := h.q.ListBundles(c.Request.Context(), owner)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	resp, err := resdto.FromBundleList(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Clear saved bundles
// @Tags bundles
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /api/bundles [delete]
func (h *BundleHandler) Clear(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	if err := h.cmds.ClearBundles(c.Request.Context(), owner); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
