package bootstrap

import (
	"log/slog"

	"rebate-ledger/internal/domain/bundle"
	"rebate-ledger/internal/domain/reward"
	"rebate-ledger/internal/domain/tier"
	"rebate-ledger/internal/infra/program"
	"rebate-ledger/internal/pkg/config"

	"go.uber.org/fx"
)

// ProgramModule exposes the tier table, prize catalog and bundle catalog.
var ProgramModule = fx.Module("program",
	fx.Provide(
		NewProgram,
		func(p *program.Program) *tier.Table { return p.Tiers },
		func(p *program.Program) *reward.Catalog { return p.Prizes },
		func(p *program.Program) *bundle.Catalog { return p.Catalog },
	),
)

func NewProgram(cfg config.Config, logger *slog.Logger) (*program.Program, error) {
	p, err := program.Load(cfg.Program.File)
	if err != nil {
		return nil, err
	}
	source := cfg.Program.File
	if source == "" {
		source = "embedded default"
	}
	logger.Info("program loaded",
		"source", source,
		"tiers", p.Tiers.Len(),
		"prizes", len(p.Prizes.Prizes()),
		"manufacturers", len(p.Catalog.Manufacturers()),
	)
	return p, nil
}
