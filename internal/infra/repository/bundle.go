package repository

import (
	"context"
	"log/slog"

	"rebate-ledger/internal/domain/bundle"
	"rebate-ledger/internal/infra"

	"github.com/google/uuid"
)

type lineItemRecord struct {
	SKU   string `json:"sku"`
	Name  string `json:"name"`
	Price amount `json:"price"`
}

type bundleRecord struct {
	ID           string           `json:"id"`
	Date         string           `json:"date"`
	Manufacturer string           `json:"manufacturer"`
	Category     string           `json:"category"`
	Items        []lineItemRecord `json:"items"`
	Count        int              `json:"count"`
	Subtotal     amount           `json:"subtotal"`
	Discount     amount           `json:"discount"`
	Fee          amount           `json:"fee"`
	Total        amount           `json:"total"`
}

type BundleRepository struct {
	lists  ListQueries
	logger *slog.Logger
}

func NewBundleRepository(lists ListQueries, logger *slog.Logger) *BundleRepository {
	return &BundleRepository{lists: lists, logger: logger}
}

func (r *BundleRepository) List(ctx context.Context, owner uuid.UUID) ([]*bundle.Bundle, error) {
	key := ownerKey(owner, BundlesKey)
	raw, err := r.lists.Get(ctx, key)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load bundles", err)
	}

	recs := decodeRecords[bundleRecord](r.logger, key, raw)
	out := make([]*bundle.Bundle, 0, len(recs))
	for _, rec := range recs {
		items := make([]bundle.LineItem, 0, len(rec.Items))
		for _, it := range rec.Items {
			items = append(items, bundle.LineItem{SKU: it.SKU, Name: it.Name, Price: it.Price.decimal()})
		}
		out = append(out, bundle.ReconstructBundle(
			rec.ID, parseTimestamp(rec.Date), rec.Manufacturer, rec.Category, items,
			bundle.Quote{
				Count:    rec.Count,
				Subtotal: rec.Subtotal.decimal(),
				Discount: rec.Discount.decimal(),
				Fee:      rec.Fee.decimal(),
				Total:    rec.Total.decimal(),
			},
		))
	}
	return out, nil
}

func (r *BundleRepository) Replace(ctx context.Context, owner uuid.UUID, history []*bundle.Bundle) error {
	recs := make([]bundleRecord, 0, len(history))
	for _, b := range history {
		q := b.Quote()
		items := make([]lineItemRecord, 0, len(b.Items()))
		for _, it := range b.Items() {
			items = append(items, lineItemRecord{SKU: it.SKU, Name: it.Name, Price: amount(it.Price)})
		}
		recs = append(recs, bundleRecord{
			ID:           b.ID(),
			Date:         formatTimestamp(b.CreatedAt()),
			Manufacturer: b.Manufacturer(),
			Category:     b.Category(),
			Items:        items,
			Count:        q.Count,
			Subtotal:     amount(q.Subtotal),
			Discount:     amount(q.Discount),
			Fee:          amount(q.Fee),
			Total:        amount(q.Total),
		})
	}
	if err := r.lists.Put(ctx, ownerKey(owner, BundlesKey), recs); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to save bundles", err)
	}
	return nil
}

func (r *BundleRepository) Clear(ctx context.Context, owner uuid.UUID) error {
	if err := r.lists.Delete(ctx, ownerKey(owner, BundlesKey)); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to clear bundles", err)
	}
	return nil
}
