//go:build e2e

package ledger_test

import (
	"context"
	"io"
	"log/slog"

	"rebate-ledger/internal/infra/kvstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// TestPostgresBackend - kv_lists upsert, load and remove
// =============================================================================

func (s *LedgerSuite) TestPostgresBackend() {
	ctx := context.Background()
	backend := kvstore.NewPostgresBackend(s.DB, slog.New(slog.NewTextHandler(io.Discard, nil)))

	s.Run("Normal case: save overwrites the previous value", func() {
		t := s.T()
		key := uuid.NewString() + "/rebate_entries_v5"

		require.NoError(t, backend.Save(ctx, key, []byte(`[1]`)))
		require.NoError(t, backend.Save(ctx, key, []byte(`[1,2]`)))

		got, ok, err := backend.Load(ctx, key)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, `[1,2]`, string(got))
	})

	s.Run("Normal case: corrupt text is stored verbatim", func() {
		t := s.T()
		key := uuid.NewString() + "/rebate_bundles_v1"

		require.NoError(t, backend.Save(ctx, key, []byte(`{not json`)))
		got, ok, err := backend.Load(ctx, key)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, `{not json`, string(got))
	})

	s.Run("Normal case: remove is idempotent", func() {
		t := s.T()
		key := uuid.NewString() + "/rebate_redemptions_v1"

		require.NoError(t, backend.Save(ctx, key, []byte(`[]`)))
		require.NoError(t, backend.Remove(ctx, key))
		require.NoError(t, backend.Remove(ctx, key))

		_, ok, err := backend.Load(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	s.Run("Abnormal case: canceled context fails the write", func() {
		t := s.T()
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		err := backend.Save(canceled, uuid.NewString()+"/rebate_entries_v5", []byte(`[]`))
		require.ErrorIs(t, err, context.Canceled)
	})
}
