package components

import (
	"rebate-ledger/internal/pkg/clock"
	"rebate-ledger/internal/usecase"
	"rebate-ledger/internal/usecase/commands"
	"rebate-ledger/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSessionCommands,
		commands.NewLedgerCommands,
		commands.NewReceiptCommands,
		commands.NewRewardCommands,
		commands.NewBundleCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewLedgerQueries,
		queries.NewRewardQueries,
		queries.NewBundleQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
