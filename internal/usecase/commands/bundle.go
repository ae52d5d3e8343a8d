package commands

import (
	"context"

	"rebate-ledger/internal/domain/bundle"
	"rebate-ledger/internal/pkg/clock"
	"rebate-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SaveBundleRequest struct {
	Manufacturer string
	Category     string
	SKUs         []string
	Discount     decimal.Decimal
	Fee          decimal.Decimal
}

type SaveBundleResult struct {
	BundleID string
	Quote    bundle.Quote
}

type BundleCommands interface {
	SaveBundle(ctx context.Context, owner uuid.UUID, req SaveBundleRequest) (*SaveBundleResult, error)
	ClearBundles(ctx context.Context, owner uuid.UUID) error
}

type bundleCommandsImpl struct {
	uow     shared.UnitOfWork
	catalog *bundle.Catalog
	clock   clock.Clock
}

func NewBundleCommands(uow shared.UnitOfWork, catalog *bundle.Catalog, clk clock.Clock) BundleCommands {
	return &bundleCommandsImpl{uow: uow, catalog: catalog, clock: clk}
}

func (c *bundleCommandsImpl) SaveBundle(ctx context.Context, owner uuid.UUID, req SaveBundleRequest) (*SaveBundleResult, error) {
	b, err := bundle.NewBundle(c.catalog, req.Manufacturer, req.Category, req.SKUs, req.Discount, req.Fee, c.clock.Now())
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, owner, func(ctx context.Context, tx shared.Tx) error {
		history, err := tx.Bundles().List(ctx, owner)
		if err != nil {
			return err
		}
		return tx.Bundles().Replace(ctx, owner, bundle.Prepend(history, b))
	})
	if err != nil {
		return nil, err
	}
	return &SaveBundleResult{BundleID: b.ID(), Quote: b.Quote()}, nil
}

func (c *bundleCommandsImpl) ClearBundles(ctx context.Context, owner uuid.UUID) error {
	return c.uow.Within(ctx, owner, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bundles().Clear(ctx, owner)
	})
}
