package bundle

import (
	"time"

	"rebate-ledger/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// LineItem is a priced snapshot of a catalog item taken when the bundle was saved.
type LineItem struct {
	SKU   string
	Name  string
	Price decimal.Decimal
}

type Bundle struct {
	id           string
	createdAt    time.Time
	manufacturer string
	category     string
	items        []LineItem
	quote        Quote
}

// NewBundle prices and snapshots a selection. A selection that matches no
// catalog item is rejected.
func NewBundle(catalog *Catalog, manufacturer, category string, skus []string, discount, fee decimal.Decimal, now time.Time) (*Bundle, error) {
	items := catalog.Items(manufacturer, category)
	quote, err := PriceSelection(items, skus, discount, fee)
	if err != nil {
		return nil, err
	}
	if quote.Count == 0 {
		return nil, ErrEmptySelection
	}

	var lines []LineItem
	if err := copier.Copy(&lines, selected(items, skus)); err != nil {
		return nil, errs.Wrap(err, "snapshot bundle items")
	}

	return &Bundle{
		id:           uuid.NewString(),
		createdAt:    now,
		manufacturer: manufacturer,
		category:     category,
		items:        lines,
		quote:        quote,
	}, nil
}

func ReconstructBundle(id string, createdAt time.Time, manufacturer, category string, items []LineItem, quote Quote) *Bundle {
	return &Bundle{
		id:           id,
		createdAt:    createdAt,
		manufacturer: manufacturer,
		category:     category,
		items:        items,
		quote:        quote,
	}
}

func (b *Bundle) ID() string           { return b.id }
func (b *Bundle) CreatedAt() time.Time { return b.createdAt }
func (b *Bundle) Manufacturer() string { return b.manufacturer }
func (b *Bundle) Category() string     { return b.category }
func (b *Bundle) Quote() Quote         { return b.quote }

func (b *Bundle) Items() []LineItem {
	out := make([]LineItem, len(b.items))
	copy(out, b.items)
	return out
}

// Prepend returns a new history with b first.
func Prepend(history []*Bundle, b *Bundle) []*Bundle {
	out := make([]*Bundle, 0, len(history)+1)
	out = append(out, b)
	return append(out, history...)
}
