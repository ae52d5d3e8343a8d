package shared

import "context"

// ReceiptEncoder turns an uploaded photo into an inline image reference.
type ReceiptEncoder interface {
	Encode(ctx context.Context, raw []byte) (string, error)
}
