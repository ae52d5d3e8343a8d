package commands

import (
	"context"
	"strings"

	"rebate-ledger/internal/domain/ledger"
	"rebate-ledger/internal/pkg/clock"
	"rebate-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AddEntryRequest struct {
	Store   string
	Item    string
	Savings decimal.Decimal
	Fee     decimal.Decimal
	// Empty means today
	Date    string
	Receipt *string
}

type AddEntryResult struct {
	EntryID string
}

type LedgerCommands interface {
	AddEntry(ctx context.Context, owner uuid.UUID, req AddEntryRequest) (*AddEntryResult, error)
	DeleteEntry(ctx context.Context, owner uuid.UUID, entryID string) error
	ClearEntries(ctx context.Context, owner uuid.UUID) error
}

type ledgerCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewLedgerCommands(uow shared.UnitOfWork, clk clock.Clock) LedgerCommands {
	return &ledgerCommandsImpl{uow: uow, clock: clk}
}

func (c *ledgerCommandsImpl) AddEntry(ctx context.Context, owner uuid.UUID, req AddEntryRequest) (*AddEntryResult, error) {
	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = clock.Today(c.clock)
	}

	entry, err := ledger.NewEntry(req.Store, req.Item, req.Savings, req.Fee, date, req.Receipt)
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, owner, func(ctx context.Context, tx shared.Tx) error {
		entries, err := tx.Entries().List(ctx, owner)
		if err != nil {
			return err
		}
		return tx.Entries().Replace(ctx, owner, ledger.Prepend(entries, entry))
	})
	if err != nil {
		return nil, err
	}
	return &AddEntryResult{EntryID: entry.ID()}, nil
}

func (c *ledgerCommandsImpl) DeleteEntry(ctx context.Context, owner uuid.UUID, entryID string) error {
	return c.uow.Within(ctx, owner, func(ctx context.Context, tx shared.Tx) error {
		entries, err := tx.Entries().List(ctx, owner)
		if err != nil {
			return err
		}
		remaining, err := ledger.Remove(entries, entryID)
		if err != nil {
			return err
		}
		return tx.Entries().Replace(ctx, owner, remaining)
	})
}

func (c *ledgerCommandsImpl) ClearEntries(ctx context.Context, owner uuid.UUID) error {
	return c.uow.Within(ctx, owner, func(ctx context.Context, tx shared.Tx) error {
		return tx.Entries().Clear(ctx, owner)
	})
}
