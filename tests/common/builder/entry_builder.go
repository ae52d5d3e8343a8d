//go:build unit || e2e

package builder

import (
	domledger "rebate-ledger/internal/domain/ledger"
	reqdto "rebate-ledger/internal/handler/dto/request"
	"rebate-ledger/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type EntryBuilder struct {
	Store   string
	Item    string
	Savings decimal.Decimal
	Fee     decimal.Decimal
	Date    string
	Receipt *string
}

func NewEntryBuilder() *EntryBuilder {
	return &EntryBuilder{
		Store:   "Home Depot",
		Item:    "Whirlpool Dishwasher",
		Savings: decimal.NewFromInt(150),
		Fee:     decimal.NewFromInt(10),
		Date:    "2024-03-15",
	}
}

func (b *EntryBuilder) With(mutate func(*EntryBuilder)) *EntryBuilder {
	mutate(b)
	return b
}

func (b *EntryBuilder) WithStore(store string) *EntryBuilder {
	b.Store = store
	return b
}

func (b *EntryBuilder) WithItem(item string) *EntryBuilder {
	b.Item = item
	return b
}

func (b *EntryBuilder) WithAmounts(savings, fee int64) *EntryBuilder {
	b.Savings = decimal.NewFromInt(savings)
	b.Fee = decimal.NewFromInt(fee)
	return b
}

func (b *EntryBuilder) WithDate(date string) *EntryBuilder {
	b.Date = date
	return b
}

func (b *EntryBuilder) WithReceipt(receipt string) *EntryBuilder {
	b.Receipt = &receipt
	return b
}

// Build methods
func (b *EntryBuilder) BuildDomain() (*domledger.Entry, error) {
	return domledger.NewEntry(b.Store, b.Item, b.Savings, b.Fee, b.Date, b.Receipt)
}

// MustBuildDomain panics on invalid builder state.
func (b *EntryBuilder) MustBuildDomain() *domledger.Entry {
	e, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return e
}

func (b *EntryBuilder) BuildDTO() reqdto.CreateEntryRequest {
	return reqdto.CreateEntryRequest{
		Store:          b.Store,
		Item:           b.Item,
		Savings:        b.Savings,
		Fee:            b.Fee,
		Date:           b.Date,
		ReceiptDataURL: b.Receipt,
	}
}

// BuildView returns the read model of a freshly built entry.
func (b *EntryBuilder) BuildView() *queries.EntryView {
	e := b.MustBuildDomain()
	return &queries.EntryView{
		ID:         e.ID(),
		Store:      e.Store(),
		Item:       e.Item(),
		Savings:    e.Savings(),
		Fee:        e.Fee(),
		Net:        e.Net(),
		Date:       e.Date(),
		HasReceipt: e.HasReceipt(),
		Receipt:    e.Receipt(),
	}
}
