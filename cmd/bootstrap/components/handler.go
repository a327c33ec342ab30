package components

import (
	"turnera/internal/handler"
	"turnera/internal/handler/api"
	"turnera/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewProviderHandler,
		api.NewCatalogHandler,
		api.NewReservationHandler,
		api.NewScheduleHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
