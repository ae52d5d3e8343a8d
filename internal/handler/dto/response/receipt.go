package response

import "rebate-ledger/internal/usecase/commands"

type ReceiptResponse struct {
	DataURL string `json:"dataUrl"`
	Bytes   int    `json:"bytes"`
}

func FromUploadReceiptResult(r *commands.UploadReceiptResult) *ReceiptResponse {
	return &ReceiptResponse{DataURL: r.DataURL, Bytes: r.Bytes}
}
