package api

import (
	"errors"
	"net/http"

	"rebate-ledger/internal/handler/httperr"
	"rebate-ledger/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoOwner = errors.New("owner missing from request context")

// requireOwner must run behind AuthMiddleware.RequireAuth.
func requireOwner(c *gin.Context) (uuid.UUID, bool) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoOwner, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return ownerID, true
}
