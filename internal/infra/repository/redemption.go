package repository

import (
	"context"
	"log/slog"

	"rebate-ledger/internal/domain/reward"
	"rebate-ledger/internal/infra"

	"github.com/google/uuid"
)

type redemptionRecord struct {
	ID         string `json:"id"`
	PrizeID    string `json:"prizeId"`
	PrizeName  string `json:"prizeName"`
	TierTarget amount `json:"tierTarget"`
	Date       string `json:"date"`
}

type RedemptionRepository struct {
	lists  ListQueries
	logger *slog.Logger
}

func NewRedemptionRepository(lists ListQueries, logger *slog.Logger) *RedemptionRepository {
	return &RedemptionRepository{lists: lists, logger: logger}
}

func (r *RedemptionRepository) List(ctx context.Context, owner uuid.UUID) ([]*reward.Redemption, error) {
	key := ownerKey(owner, RedemptionsKey)
	raw, err := r.lists.Get(ctx, key)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load redemptions", err)
	}

	recs := decodeRecords[redemptionRecord](r.logger, key, raw)
	out := make([]*reward.Redemption, 0, len(recs))
	for _, rec := range recs {
		out = append(out, reward.ReconstructRedemption(
			rec.ID, rec.PrizeID, rec.PrizeName, rec.TierTarget.decimal(), parseTimestamp(rec.Date),
		))
	}
	return out, nil
}

func (r *RedemptionRepository) Replace(ctx context.Context, owner uuid.UUID, history []*reward.Redemption) error {
	recs := make([]redemptionRecord, 0, len(history))
	for _, h := range history {
		recs = append(recs, redemptionRecord{
			ID:         h.ID(),
			PrizeID:    h.PrizeID(),
			PrizeName:  h.PrizeName(),
			TierTarget: amount(h.TierTarget()),
			Date:       formatTimestamp(h.RedeemedAt()),
		})
	}
	if err := r.lists.Put(ctx, ownerKey(owner, RedemptionsKey), recs); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to save redemptions", err)
	}
	return nil
}

func (r *RedemptionRepository) Clear(ctx context.Context, owner uuid.UUID) error {
	if err := r.lists.Delete(ctx, ownerKey(owner, RedemptionsKey)); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to clear redemptions", err)
	}
	return nil
}
