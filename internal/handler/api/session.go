package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "rebate-ledger/internal/handler/dto/request"
	resdto "rebate-ledger/internal/handler/dto/response"
	"rebate-ledger/internal/handler/httperr"
	"rebate-ledger/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	cmds commands.SessionCommands
}

func NewSessionHandler(cmds commands.SessionCommands) *SessionHandler {
	return &SessionHandler{cmds: cmds}
}

// @Summary Start or resume a session
// @Description Issue a bearer token for a new owner, or for the owner id in the body.
// @Description The owner id is itself a credential: anyone holding it can resume that ledger.
// @Description Share it only the way a bearer token would be shared.
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body reqdto.IssueSessionRequest false "Owner to resume"
// @Success 201 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Router /api/sessions [post]
func (h *SessionHandler) Issue(c *gin.Context) {
	var req reqdto.IssueSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.IssueSession(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Could not start session", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSessionResult(result))
}
