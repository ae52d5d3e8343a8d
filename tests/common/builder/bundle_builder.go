//go:build unit || e2e

package builder

import (
	reqdto "rebate-ledger/internal/handler/dto/request"

	"github.com/shopspring/decimal"
)

type BundleBuilder struct {
	Manufacturer string
	Category     string
	SKUs         []string
	Discount     decimal.Decimal
	Fee          decimal.Decimal
}

func NewBundleBuilder() *BundleBuilder {
	return &BundleBuilder{
		Manufacturer: "Whirlpool",
		Category:     "Appliances",
		SKUs:         []string{"WH-DW-03", "WH-MW-04"},
		Discount:     decimal.NewFromInt(100),
		Fee:          decimal.NewFromInt(25),
	}
}

func (b *BundleBuilder) With(mutate func(*BundleBuilder)) *BundleBuilder {
	mutate(b)
	return b
}

func (b *BundleBuilder) WithSKUs(skus ...string) *BundleBuilder {
	b.SKUs = skus
	return b
}

func (b *BundleBuilder) BuildDTO() reqdto.BundleSelectionRequest {
	return reqdto.BundleSelectionRequest{
		Manufacturer: b.Manufacturer,
		Category:     b.Category,
		SKUs:         append([]string(nil), b.SKUs...),
		Discount:     b.Discount,
		Fee:          b.Fee,
	}
}
