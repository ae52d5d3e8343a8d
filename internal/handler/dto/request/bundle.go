package request

import (
	"rebate-ledger/internal/usecase/commands"
	"rebate-ledger/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// BundleSelectionRequest is shared by the quote and save endpoints.
type BundleSelectionRequest struct {
	Manufacturer string          `json:"manufacturer" binding:"required"`
	Category     string          `json:"category" binding:"required"`
	SKUs         []string        `json:"skus"`
	Discount     decimal.Decimal `json:"discount"`
	Fee          decimal.Decimal `json:"fee"`
}

func (r BundleSelectionRequest) ToQuery() (queries.QuoteRequest, error) {
	var out queries.QuoteRequest
	err := copier.Copy(&out, &r)
	return out, err
}

func (r BundleSelectionRequest) ToCommand() (commands.SaveBundleRequest, error) {
	var out commands.SaveBundleRequest
	err := copier.Copy(&out, &r)
	return out, err
}
