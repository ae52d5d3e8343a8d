package commands

import (
	"context"

	"rebate-ledger/internal/domain/ledger"
	"rebate-ledger/internal/domain/reward"
	"rebate-ledger/internal/pkg/clock"
	"rebate-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type RedeemResult struct {
	RedemptionID string
	PrizeID      string
	PrizeName    string
}

type RewardCommands interface {
	Redeem(ctx context.Context, owner uuid.UUID, prizeID string) (*RedeemResult, error)
	ClearRedemptions(ctx context.Context, owner uuid.UUID) error
}

type rewardCommandsImpl struct {
	uow    shared.UnitOfWork
	prizes *reward.Catalog
	clock  clock.Clock
}

func NewRewardCommands(uow shared.UnitOfWork, prizes *reward.Catalog, clk clock.Clock) RewardCommands {
	return &rewardCommandsImpl{uow: uow, prizes: prizes, clock: clk}
}

// Redeem checks eligibility against the owner's current net savings and
// history under the owner's lock, so two requests cannot both redeem a prize.
func (c *rewardCommandsImpl) Redeem(ctx context.Context, owner uuid.UUID, prizeID string) (*RedeemResult, error) {
	prize, err := c.prizes.Find(prizeID)
	if err != nil {
		return nil, err
	}

	var rec *reward.Redemption
	err = c.uow.Within(ctx, owner, func(ctx context.Context, tx shared.Tx) error {
		entries, err := tx.Entries().List(ctx, owner)
		if err != nil {
			return err
		}
		history, err := tx.Redemptions().List(ctx, owner)
		if err != nil {
			return err
		}

		updated, r, err := reward.Redeem(prize, ledger.NetSavings(entries), history, c.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Redemptions().Replace(ctx, owner, updated); err != nil {
			return err
		}
		rec = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &RedeemResult{
		RedemptionID: rec.ID(),
		PrizeID:      rec.PrizeID(),
		PrizeName:    rec.PrizeName(),
	}, nil
}

func (c *rewardCommandsImpl) ClearRedemptions(ctx context.Context, owner uuid.UUID) error {
	return c.uow.Within(ctx, owner, func(ctx context.Context, tx shared.Tx) error {
		return tx.Redemptions().Clear(ctx, owner)
	})
}
