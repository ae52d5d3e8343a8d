package bootstrap

import (
	"rebate-ledger/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	JWTModule,
	ProgramModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
