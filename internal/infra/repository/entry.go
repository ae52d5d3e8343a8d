package repository

import (
	"context"
	"log/slog"

	"rebate-ledger/internal/domain/ledger"
	"rebate-ledger/internal/infra"

	"github.com/google/uuid"
)

type entryRecord struct {
	ID             string  `json:"id"`
	Store          string  `json:"store"`
	Item           string  `json:"item"`
	Savings        amount  `json:"savings"`
	Fee            amount  `json:"fee"`
	Date           string  `json:"date"`
	ReceiptDataURL *string `json:"receiptDataUrl"`
}

type EntryRepository struct {
	lists  ListQueries
	logger *slog.Logger
}

func NewEntryRepository(lists ListQueries, logger *slog.Logger) *EntryRepository {
	return &EntryRepository{lists: lists, logger: logger}
}

func (r *EntryRepository) List(ctx context.Context, owner uuid.UUID) ([]*ledger.Entry, error) {
	key := ownerKey(owner, EntriesKey)
	raw, err := r.lists.Get(ctx, key)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load entries", err)
	}

	recs := decodeRecords[entryRecord](r.logger, key, raw)
	out := make([]*ledger.Entry, 0, len(recs))
	for _, rec := range recs {
		out = append(out, ledger.ReconstructEntry(
			rec.ID, rec.Store, rec.Item, rec.Savings.decimal(), rec.Fee.decimal(), rec.Date, rec.ReceiptDataURL,
		))
	}
	return out, nil
}

func (r *EntryRepository) Replace(ctx context.Context, owner uuid.UUID, entries []*ledger.Entry) error {
	recs := make([]entryRecord, 0, len(entries))
	for _, e := range entries {
		recs = append(recs, entryRecord{
			ID:             e.ID(),
			Store:          e.Store(),
			Item:           e.Item(),
			Savings:        amount(e.Savings()),
			Fee:            amount(e.Fee()),
			Date:           e.Date(),
			ReceiptDataURL: e.Receipt(),
		})
	}
	if err := r.lists.Put(ctx, ownerKey(owner, EntriesKey), recs); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to save entries", err)
	}
	return nil
}

func (r *EntryRepository) Clear(ctx context.Context, owner uuid.UUID) error {
	if err := r.lists.Delete(ctx, ownerKey(owner, EntriesKey)); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to clear entries", err)
	}
	return nil
}
