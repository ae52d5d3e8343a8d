//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"rebate-ledger/internal/domain/bundle"
	"rebate-ledger/internal/domain/ledger"
	"rebate-ledger/internal/domain/reward"
	"rebate-ledger/internal/infra/kvstore"
	"rebate-ledger/internal/infra/repository"
	"rebate-ledger/internal/infra/uow"
	"rebate-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Store wires the in-memory list store the same way the application does.
type Store struct {
	Backend     *kvstore.MemoryBackend
	Lists       *kvstore.ListStore
	Entries     *repository.EntryRepository
	Redemptions *repository.RedemptionRepository
	Bundles     *repository.BundleRepository
	UoW         shared.UnitOfWork
}

func NewMemoryStore(t *testing.T, quotaBytes int) *Store {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	backend := kvstore.NewMemoryBackend()
	lists := kvstore.NewListStore(backend, quotaBytes, logger)

	s := &Store{
		Backend:     backend,
		Lists:       lists,
		Entries:     repository.NewEntryRepository(lists, logger),
		Redemptions: repository.NewRedemptionRepository(lists, logger),
		Bundles:     repository.NewBundleRepository(lists, logger),
	}
	s.UoW = uow.NewOwnerUoW(s.Entries, s.Redemptions, s.Bundles)
	return s
}

func (s *Store) SeedEntries(t *testing.T, owner uuid.UUID, entries ...*ledger.Entry) {
	t.Helper()
	require.NoError(t, s.Entries.Replace(context.Background(), owner, entries))
}

func (s *Store) SeedRedemptions(t *testing.T, owner uuid.UUID, history ...*reward.Redemption) {
	t.Helper()
	require.NoError(t, s.Redemptions.Replace(context.Background(), owner, history))
}

func (s *Store) SeedBundles(t *testing.T, owner uuid.UUID, history ...*bundle.Bundle) {
	t.Helper()
	require.NoError(t, s.Bundles.Replace(context.Background(), owner, history))
}

// SeedRaw stores value verbatim, bypassing encoding.
func (s *Store) SeedRaw(t *testing.T, owner uuid.UUID, key, value string) {
	t.Helper()
	require.NoError(t, s.Backend.Save(context.Background(), owner.String()+"/"+key, []byte(value)))
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + ";")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}

// CountLists returns how many list rows the owner has in kv_lists.
func CountLists(t *testing.T, db DBLike, owner uuid.UUID) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM kv_lists WHERE key LIKE $1", owner.String()+"/%").Scan(&n)
	require.NoError(t, err)
	return n
}
