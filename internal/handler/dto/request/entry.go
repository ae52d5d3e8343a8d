package request

import (
	"rebate-ledger/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CreateEntryRequest struct {
	Store   string          `json:"store" binding:"required"`
	Item    string          `json:"item" binding:"required"`
	Savings decimal.Decimal `json:"savings"`
	Fee     decimal.Decimal `json:"fee"`
	// YYYY-MM-DD; empty means today
	Date           string  `json:"date,omitempty"`
	ReceiptDataURL *string `json:"receiptDataUrl,omitempty"`
}

func (r CreateEntryRequest) ToCommand() commands.AddEntryRequest {
	return commands.AddEntryRequest{
		Store:   r.Store,
		Item:    r.Item,
		Savings: r.Savings,
		Fee:     r.Fee,
		Date:    r.Date,
		Receipt: r.ReceiptDataURL,
	}
}
