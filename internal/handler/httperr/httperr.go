package httperr

import (
	"net/http"

	"rebate-ledger/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// StorageFullMessage is shown whenever a write would exceed the store quota.
const StorageFullMessage = "Storage is full (too many receipt photos). Try removing some receipts or using smaller photos."

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError maps an error class to a status. Validation and
// not-found messages are user-facing; anything else is reported generically.
func AbortWithDomainError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrCapacityExceeded):
		AbortWithError(c, http.StatusInsufficientStorage, err, StorageFullMessage, nil)
	case errs.Is(err, errs.ErrNotFound):
		AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	case errs.Is(err, errs.ErrValidation):
		AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
