package repository

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Logical list keys, namespaced per owner.
const (
	EntriesKey     = "rebate_entries_v5"
	RedemptionsKey = "rebate_redemptions_v1"
	BundlesKey     = "rebate_bundles_v1"
)

type ListQueries interface {
	Get(ctx context.Context, key string) ([]json.RawMessage, error)
	Put(ctx context.Context, key string, items any) error
	Delete(ctx context.Context, key string) error
}

func ownerKey(owner uuid.UUID, key string) string {
	return owner.String() + "/" + key
}
