package components

import (
	"tournament-billing/internal/handler"
	"tournament-billing/internal/handler/api"
	"tournament-billing/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewInvoiceHandler,
		api.NewChangeRequestHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
