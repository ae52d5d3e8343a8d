package shared

import (
	"context"

	"github.com/google/uuid"
)

// UnitOfWork serializes access to one owner's lists. Writers are exclusive;
// readers share. Cross-process writers are not coordinated and the last write
// wins.
type UnitOfWork interface {
	// Within: exclusive read-modify-write over the owner's lists
	Within(ctx context.Context, owner uuid.UUID, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: consistent snapshot across the owner's lists
	WithinReadOnly(ctx context.Context, owner uuid.UUID, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Entries() EntryRepository
	Redemptions() RedemptionRepository
	Bundles() BundleRepository
}
