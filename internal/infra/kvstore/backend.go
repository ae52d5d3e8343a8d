package kvstore

import "context"

// Backend stores opaque values under string keys. Load reports ok=false for
// an absent key.
type Backend interface {
	Load(ctx context.Context, key string) (value []byte, ok bool, err error)
	Save(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
