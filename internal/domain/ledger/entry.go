package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DateLayout = time.DateOnly

// receipt references are inline data URLs produced by the receipt encoder
const receiptPrefix = "data:image/"

// Entry is one logged rebate. Entries are never mutated after creation.
type Entry struct {
	id      string
	store   string
	item    string
	savings decimal.Decimal
	fee     decimal.Decimal
	date    string
	receipt *string
}

// NewEntry applies the admission rule: store and item are required after
// trimming, both amounts must be non-negative and the fee may not exceed the
// savings.
func NewEntry(store, item string, savings, fee decimal.Decimal, date string, receipt *string) (*Entry, error) {
	store = strings.TrimSpace(store)
	item = strings.TrimSpace(item)
	date = strings.TrimSpace(date)

	if store == "" {
		return nil, ErrMissingStore
	}
	if item == "" {
		return nil, ErrMissingItem
	}
	if savings.IsNegative() {
		return nil, ErrNegativeSavings
	}
	if fee.IsNegative() {
		return nil, ErrNegativeFee
	}
	if fee.GreaterThan(savings) {
		return nil, ErrFeeExceedsSavings
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}
	if receipt != nil {
		if !strings.HasPrefix(*receipt, receiptPrefix) {
			return nil, ErrInvalidReceipt
		}
		r := *receipt
		receipt = &r
	}

	return &Entry{
		id:      uuid.NewString(),
		store:   store,
		item:    item,
		savings: savings,
		fee:     fee,
		date:    date,
		receipt: receipt,
	}, nil
}

// ReconstructEntry rebuilds a persisted entry without re-running admission.
func ReconstructEntry(id, store, item string, savings, fee decimal.Decimal, date string, receipt *string) *Entry {
	return &Entry{
		id:      id,
		store:   store,
		item:    item,
		savings: savings,
		fee:     fee,
		date:    date,
		receipt: receipt,
	}
}

func (e *Entry) ID() string               { return e.id }
func (e *Entry) Store() string            { return e.store }
func (e *Entry) Item() string             { return e.item }
func (e *Entry) Savings() decimal.Decimal { return e.savings }
func (e *Entry) Fee() decimal.Decimal     { return e.fee }
func (e *Entry) Date() string             { return e.date }
func (e *Entry) Receipt() *string         { return e.receipt }
func (e *Entry) HasReceipt() bool         { return e.receipt != nil && *e.receipt != "" }

// Net is the per-row savings after fees.
func (e *Entry) Net() decimal.Decimal {
	return e.savings.Sub(e.fee)
}
