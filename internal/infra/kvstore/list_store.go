package kvstore

import (
	"bytes"
	"context"
	"log/slog"

	"rebate-ledger/internal/pkg/errs"

	"github.com/goccy/go-json"
)

// ErrCapacityExceeded is returned by Put when the serialized list is larger
// than the configured quota. Nothing is written in that case.
var ErrCapacityExceeded = errs.NewCapacity("storage is full")

// ListStore keeps JSON arrays under string keys. Get never fails on bad
// stored data: a value that is not a JSON array reads as an empty list.
type ListStore struct {
	backend    Backend
	quotaBytes int
	logger     *slog.Logger
}

func NewListStore(backend Backend, quotaBytes int, logger *slog.Logger) *ListStore {
	return &ListStore{backend: backend, quotaBytes: quotaBytes, logger: logger}
}

func (s *ListStore) Get(ctx context.Context, key string) ([]json.RawMessage, error) {
	raw, ok, err := s.backend.Load(ctx, key)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	if !ok || len(bytes.TrimSpace(raw)) == 0 {
		return []json.RawMessage{}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		s.logger.Warn("discarding corrupt list",
			slog.String("key", key),
			slog.Int("bytes", len(raw)),
			slog.String("error", err.Error()))
		return []json.RawMessage{}, nil
	}
	if items == nil {
		// stored "null"
		return []json.RawMessage{}, nil
	}
	return items, nil
}

// Put replaces the list under key with items, which must encode as a JSON array.
func (s *ListStore) Put(ctx context.Context, key string, items any) error {
	b, err := json.Marshal(items)
	if err != nil {
		return errs.Wrapf(err, "encode %s", key)
	}
	if len(b) > 0 && b[0] != '[' && !bytes.Equal(b, []byte("null")) {
		return errs.Newf("value for %s is not a list", key)
	}
	if bytes.Equal(b, []byte("null")) {
		b = []byte("[]")
	}
	if s.quotaBytes > 0 && len(b) > s.quotaBytes {
		s.logger.Warn("list exceeds storage quota",
			slog.String("key", key),
			slog.Int("bytes", len(b)),
			slog.Int("quota", s.quotaBytes))
		return ErrCapacityExceeded
	}
	if err := s.backend.Save(ctx, key, b); err != nil {
		return errs.Mark(err, errs.ErrStorageFailure)
	}
	return nil
}

func (s *ListStore) Delete(ctx context.Context, key string) error {
	if err := s.backend.Remove(ctx, key); err != nil {
		return errs.Mark(err, errs.ErrStorageFailure)
	}
	return nil
}
