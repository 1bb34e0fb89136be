package components

import (
	"greenrfq/internal/handler"
	"greenrfq/internal/handler/api"
	"greenrfq/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRFQHandler,
		api.NewClaimHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
