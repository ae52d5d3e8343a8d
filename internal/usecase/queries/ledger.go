package queries

import (
	"context"

	"rebate-ledger/internal/domain/ledger"
	"rebate-ledger/internal/domain/tier"
	"rebate-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EntryView struct {
	ID         string
	Store      string
	Item       string
	Savings    decimal.Decimal
	Fee        decimal.Decimal
	Net        decimal.Decimal
	Date       string
	HasReceipt bool
	// Only populated by GetEntry
	Receipt *string
}

type TierProgressView struct {
	CurrentTierName  string
	NextTierTarget   decimal.Decimal
	ProgressFraction float64
}

type TierStatusView struct {
	Name    string
	Target  decimal.Decimal
	Prize   string
	Reached bool
}

type DashboardView struct {
	GrossSavings decimal.Decimal
	TotalFees    decimal.Decimal
	NetSavings   decimal.Decimal
	EntryCount   int
	Progress     TierProgressView
	Tiers        []TierStatusView
}

type LedgerQueries interface {
	Dashboard(ctx context.Context, owner uuid.UUID) (*DashboardView, error)
	ListEntries(ctx context.Context, owner uuid.UUID, query string) ([]*EntryView, error)
	GetEntry(ctx context.Context, owner uuid.UUID, entryID string) (*EntryView, error)
}

type ledgerQueriesImpl struct {
	uow   shared.UnitOfWork
	tiers *tier.Table
}

func NewLedgerQueries(uow shared.UnitOfWork, tiers *tier.Table) LedgerQueries {
	return &ledgerQueriesImpl{uow: uow, tiers: tiers}
}

func (q *ledgerQueriesImpl) loadEntries(ctx context.Context, owner uuid.UUID) ([]*ledger.Entry, error) {
	var entries []*ledger.Entry
	err := q.uow.WithinReadOnly(ctx, owner, func(ctx context.Context, tx shared.Tx) error {
		var err error
		entries, err = tx.Entries().List(ctx, owner)
		return err
	})
	return entries, err
}

func (q *ledgerQueriesImpl) Dashboard(ctx context.Context, owner uuid.UUID) (*DashboardView, error) {
	entries, err := q.loadEntries(ctx, owner)
	if err != nil {
		return nil, err
	}

	totals := ledger.ComputeTotals(entries)
	progress := q.tiers.Progress(totals.Net)

	statuses := q.tiers.Statuses(totals.Net)
	tiers := make([]TierStatusView, 0, len(statuses))
	for _, s := range statuses {
		tiers = append(tiers, TierStatusView{Name: s.Name, Target: s.Target, Prize: s.Prize, Reached: s.Reached})
	}

	return &DashboardView{
		GrossSavings: totals.Gross,
		TotalFees:    totals.Fees,
		NetSavings:   totals.Net,
		EntryCount:   len(entries),
		Progress: TierProgressView{
			CurrentTierName:  progress.CurrentTierName,
			NextTierTarget:   progress.NextTierTarget,
			ProgressFraction: progress.Fraction,
		},
		Tiers: tiers,
	}, nil
}

func (q *ledgerQueriesImpl) ListEntries(ctx context.Context, owner uuid.UUID, query string) ([]*EntryView, error) {
	entries, err := q.loadEntries(ctx, owner)
	if err != nil {
		return nil, err
	}

	filtered := ledger.Filter(entries, query)
	out := make([]*EntryView, 0, len(filtered))
	for _, e := range filtered {
		out = append(out, toEntryView(e, false))
	}
	return out, nil
}

func (q *ledgerQueriesImpl) GetEntry(ctx context.Context, owner uuid.UUID, entryID string) (*EntryView, error) {
	entries, err := q.loadEntries(ctx, owner)
	if err != nil {
		return nil, err
	}
	e, err := ledger.FindByID(entries, entryID)
	if err != nil {
		return nil, err
	}
	return toEntryView(e, true), nil
}

func toEntryView(e *ledger.Entry, withReceipt bool) *EntryView {
	v := &EntryView{
		ID:         e.ID(),
		Store:      e.Store(),
		Item:       e.Item(),
		Savings:    e.Savings(),
		Fee:        e.Fee(),
		Net:        e.Net(),
		Date:       e.Date(),
		HasReceipt: e.HasReceipt(),
	}
	if withReceipt && e.HasReceipt() {
		v.Receipt = e.Receipt()
	}
	return v
}
