package shared

import (
	"context"

	"rebate-ledger/internal/domain/bundle"
	"rebate-ledger/internal/domain/ledger"
	"rebate-ledger/internal/domain/reward"

	"github.com/google/uuid"
)

// Each repository replaces its list wholesale; there are no partial updates.

type EntryRepository interface {
	List(ctx context.Context, owner uuid.UUID) ([]*ledger.Entry, error)
	Replace(ctx context.Context, owner uuid.UUID, entries []*ledger.Entry) error
	Clear(ctx context.Context, owner uuid.UUID) error
}

type RedemptionRepository interface {
	List(ctx context.Context, owner uuid.UUID) ([]*reward.Redemption, error)
	Replace(ctx context.Context, owner uuid.UUID, history []*reward.Redemption) error
	Clear(ctx context.Context, owner uuid.UUID) error
}

type BundleRepository interface {
	List(ctx context.Context, owner uuid.UUID) ([]*bundle.Bundle, error)
	Replace(ctx context.Context, owner uuid.UUID, history []*bundle.Bundle) error
	Clear(ctx context.Context, owner uuid.UUID) error
}
