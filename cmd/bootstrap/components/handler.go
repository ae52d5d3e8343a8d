package components

import (
	"rebate-ledger/internal/handler"
	"rebate-ledger/internal/handler/api"
	"rebate-ledger/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSessionHandler,
		api.NewLedgerHandler,
		api.NewReceiptHandler,
		api.NewRewardHandler,
		api.NewBundleHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
