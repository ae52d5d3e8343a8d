package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"rebate-ledger/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// ApplyMigrations runs pending migrations through the atlas CLI.
func ApplyMigrations(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	client, err := atlasexec.NewClient(".", cfg.Migrate.AtlasBin)
	if err != nil {
		return fmt.Errorf("failed to initialize atlas client: %w", err)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: cfg.Migrate.DirURL,
	})
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target,
	)
	return nil
}
