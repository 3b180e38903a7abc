package components

import (
	"tripflow/internal/handler"
	"tripflow/internal/handler/api"
	"tripflow/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSessionHandler,
		api.NewTripsHandler,
		api.NewAuthHandler,
		api.NewPaymentHandler,
		middleware.NewSessionMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
