package bootstrap

import (
	"context"
	"log/slog"

	"rebate-ledger/internal/infra/db"
	"rebate-ledger/internal/infra/kvstore"
	"rebate-ledger/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewBackend,
	),
)

// NewBackend opens the list backend selected by STORE_DRIVER.
func NewBackend(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (kvstore.Backend, error) {
	ctx := context.Background()

	switch cfg.Store.Driver {
	case config.StoreDriverSQLite:
		backend, err := kvstore.OpenSQLite(ctx, cfg.Store.SQLitePath, logger)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return backend.Close()
			},
		})
		logger.Info("using sqlite store", "path", cfg.Store.SQLitePath)
		return backend, nil

	case config.StoreDriverPostgres:
		if cfg.Migrate.OnStart {
			if err := ApplyMigrations(ctx, cfg, logger); err != nil {
				return nil, err
			}
		}
		pool, cleanup, err := db.Connect(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		logger.Info("using postgres store", "host", cfg.DB.Host, "database", cfg.DB.DBName)
		return kvstore.NewPostgresBackend(pool, logger), nil

	default:
		logger.Warn("using in-memory store; data is lost on restart")
		return kvstore.NewMemoryBackend(), nil
	}
}
