package queries

import (
	"context"
	"time"

	"rebate-ledger/internal/domain/ledger"
	"rebate-ledger/internal/domain/reward"
	"rebate-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PrizeStatusLocked   = "locked"
	PrizeStatusReady    = "ready"
	PrizeStatusRedeemed = "redeemed"
)

type PrizeView struct {
	ID         string
	Name       string
	Detail     string
	TierTarget decimal.Decimal
	Unlocked   bool
	Redeemed   bool
	Status     string
}

type RedemptionView struct {
	ID         string
	PrizeID    string
	PrizeName  string
	TierTarget decimal.Decimal
	RedeemedAt time.Time
}

type RewardsOverview struct {
	NetSavings decimal.Decimal
	Counts     reward.Counts
	Prizes     []PrizeView
	History    []RedemptionView
}

type RewardQueries interface {
	Overview(ctx context.Context, owner uuid.UUID) (*RewardsOverview, error)
}

type rewardQueriesImpl struct {
	uow    shared.UnitOfWork
	prizes *reward.Catalog
}

func NewRewardQueries(uow shared.UnitOfWork, prizes *reward.Catalog) RewardQueries {
	return &rewardQueriesImpl{uow: uow, prizes: prizes}
}

func (q *rewardQueriesImpl) Overview(ctx context.Context, owner uuid.UUID) (*RewardsOverview, error) {
	var (
		entries []*ledger.Entry
		history []*reward.Redemption
	)
	err := q.uow.WithinReadOnly(ctx, owner, func(ctx context.Context, tx shared.Tx) error {
		var err error
		if entries, err = tx.Entries().List(ctx, owner); err != nil {
			return err
		}
		history, err = tx.Redemptions().List(ctx, owner)
		return err
	})
	if err != nil {
		return nil, err
	}

	net := ledger.NetSavings(entries)
	redeemed := reward.RedeemedIDs(history)

	catalog := q.prizes.Prizes()
	prizes := make([]PrizeView, 0, len(catalog))
	for _, p := range catalog {
		_, isRedeemed := redeemed[p.ID]
		unlocked := p.UnlockedAt(net)

		status := PrizeStatusLocked
		switch {
		case isRedeemed:
			status = PrizeStatusRedeemed
		case unlocked:
			status = PrizeStatusReady
		}

		prizes = append(prizes, PrizeView{
			ID:         p.ID,
			Name:       p.Name,
			Detail:     p.Detail,
			TierTarget: p.TierTarget,
			Unlocked:   unlocked,
			Redeemed:   isRedeemed,
			Status:     status,
		})
	}

	views := make([]RedemptionView, 0, len(history))
	for _, r := range history {
		views = append(views, RedemptionView{
			ID:         r.ID(),
			PrizeID:    r.PrizeID(),
			PrizeName:  r.PrizeName(),
			TierTarget: r.TierTarget(),
			RedeemedAt: r.RedeemedAt(),
		})
	}

	return &RewardsOverview{
		NetSavings: net,
		Counts:     q.prizes.Summarize(net, history),
		Prizes:     prizes,
		History:    views,
	}, nil
}
