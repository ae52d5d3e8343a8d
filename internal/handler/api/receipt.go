package api

import (
	"errors"
	"io"
	"net/http"

	resdto "rebate-ledger/internal/handler/dto/response"
	"rebate-ledger/internal/handler/httperr"
	"rebate-ledger/internal/infra/receipt"
	"rebate-ledger/internal/pkg/config"
	"rebate-ledger/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReceiptHandler struct {
	cmds        commands.ReceiptCommands
	maxRawBytes int64
}

func NewReceiptHandler(cmds commands.ReceiptCommands, cfg config.Config) *ReceiptHandler {
	return &ReceiptHandler{cmds: cmds, maxRawBytes: int64(cfg.Receipt.MaxRawBytes)}
}

// @Summary Upload receipt photo
// @Description Compress a photo into an inline JPEG reference for an entry
// @Tags receipts
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Receipt photo"
// @Success 201 {object} resdto.ReceiptResponse
// @Failure 400 {object} httperr.Response
// @Failure 413 {object} httperr.Response
// @Failure 415 {object} httperr.Response
// @Router /api/receipts [post]
func (h *ReceiptHandler) Upload(c *gin.Context) {
	if _, ok := requireOwner(c); !ok {
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, receipt.ErrReceiptTooLarge.Error(), nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "A receipt file is required", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Could not read upload", nil)
		return
	}
	defer f.Close()

	// one byte past the limit is enough for the encoder to reject it
	raw, err := io.ReadAll(io.LimitReader(f, h.maxRawBytes+1))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Could not read upload", nil)
		return
	}

	result, err := h.cmds.UploadReceipt(c.Request.Context(), raw)
	if err != nil {
		switch {
		case errors.Is(err, receipt.ErrReceiptTooLarge):
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, err.Error(), nil)
		case errors.Is(err, receipt.ErrNotAnImage):
			httperr.AbortWithError(c, http.StatusUnsupportedMediaType, err, err.Error(), nil)
		case errors.Is(err, receipt.ErrUndecodable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, receipt.ErrUndecodable.Error(), nil)
		default:
			httperr.AbortWithDomainError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUploadReceiptResult(result))
}
