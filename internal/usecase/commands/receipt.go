package commands

import (
	"context"
	"log/slog"

	"rebate-ledger/internal/usecase/shared"
)

type UploadReceiptResult struct {
	DataURL string
	Bytes   int
}

type ReceiptCommands interface {
	UploadReceipt(ctx context.Context, raw []byte) (*UploadReceiptResult, error)
}

type receiptCommandsImpl struct {
	encoder shared.ReceiptEncoder
	logger  *slog.Logger
}

func NewReceiptCommands(encoder shared.ReceiptEncoder, logger *slog.Logger) ReceiptCommands {
	return &receiptCommandsImpl{encoder: encoder, logger: logger}
}

// UploadReceipt returns nothing on failure; no partial reference is produced.
func (c *receiptCommandsImpl) UploadReceipt(ctx context.Context, raw []byte) (*UploadReceiptResult, error) {
	dataURL, err := c.encoder.Encode(ctx, raw)
	if err != nil {
		c.logger.Info("receipt rejected", slog.Int("raw_bytes", len(raw)), slog.String("error", err.Error()))
		return nil, err
	}
	c.logger.Debug("receipt encoded", slog.Int("raw_bytes", len(raw)), slog.Int("encoded_bytes", len(dataURL)))
	return &UploadReceiptResult{DataURL: dataURL, Bytes: len(dataURL)}, nil
}
