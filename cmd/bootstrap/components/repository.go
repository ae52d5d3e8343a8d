package components

import (
	"log/slog"

	"rebate-ledger/internal/infra/kvstore"
	"rebate-ledger/internal/infra/receipt"
	"rebate-ledger/internal/infra/repository"
	"rebate-ledger/internal/infra/uow"
	"rebate-ledger/internal/pkg/config"
	"rebate-ledger/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			NewListStore,
			fx.As(new(repository.ListQueries)),
		),
		fx.Annotate(
			repository.NewEntryRepository,
			fx.As(new(shared.EntryRepository)),
		),
		fx.Annotate(
			repository.NewRedemptionRepository,
			fx.As(new(shared.RedemptionRepository)),
		),
		fx.Annotate(
			repository.NewBundleRepository,
			fx.As(new(shared.BundleRepository)),
		),
		uow.NewOwnerUoW,
		fx.Annotate(
			NewReceiptEncoder,
			fx.As(new(shared.ReceiptEncoder)),
		),
	),
)

func NewListStore(backend kvstore.Backend, cfg config.Config, logger *slog.Logger) *kvstore.ListStore {
	return kvstore.NewListStore(backend, cfg.Store.QuotaBytes, logger)
}

func NewReceiptEncoder(cfg config.Config) *receipt.Encoder {
	return receipt.NewEncoder(cfg.Receipt)
}
