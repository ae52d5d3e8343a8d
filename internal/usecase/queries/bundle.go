package queries

import (
	"context"
	"time"

	"rebate-ledger/internal/domain/bundle"
	"rebate-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type QuoteRequest struct {
	Manufacturer string
	Category     string
	SKUs         []string
	Discount     decimal.Decimal
	Fee          decimal.Decimal
}

type BundleView struct {
	ID           string
	CreatedAt    time.Time
	Manufacturer string
	Category     string
	Items        []bundle.LineItem
	Quote        bundle.Quote
}

type BundleQueries interface {
	Catalog(ctx context.Context) []bundle.Manufacturer
	Quote(ctx context.Context, req QuoteRequest) (*bundle.Quote, error)
	ListBundles(ctx context.Context, owner uuid.UUID) ([]*BundleView, error)
}

type bundleQueriesImpl struct {
	uow     shared.UnitOfWork
	catalog *bundle.Catalog
}

func NewBundleQueries(uow shared.UnitOfWork, catalog *bundle.Catalog) BundleQueries {
	return &bundleQueriesImpl{uow: uow, catalog: catalog}
}

func (q *bundleQueriesImpl) Catalog(_ context.Context) []bundle.Manufacturer {
	return q.catalog.Tree()
}

// Quote prices a selection without saving it. Unknown groups price as empty.
func (q *bundleQueriesImpl) Quote(_ context.Context, req QuoteRequest) (*bundle.Quote, error) {
	quote, err := bundle.PriceSelection(q.catalog.Items(req.Manufacturer, req.Category), req.SKUs, req.Discount, req.Fee)
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (q *bundleQueriesImpl) ListBundles(ctx context.Context, owner uuid.UUID) ([]*BundleView, error) {
	var history []*bundle.Bundle
	err := q.uow.WithinReadOnly(ctx, owner, func(ctx context.Context, tx shared.Tx) error {
		var err error
		history, err = tx.Bundles().List(ctx, owner)
		return err
	})
	if err != nil {
		return nil, err
	}

	out := make([]*BundleView, 0, len(history))
	for _, b := range history {
		out = append(out, &BundleView{
			ID:           b.ID(),
			CreatedAt:    b.CreatedAt(),
			Manufacturer: b.Manufacturer(),
			Category:     b.Category(),
			Items:        b.Items(),
			Quote:        b.Quote(),
		})
	}
	return out, nil
}
