package components

import (
	"eiffel-bike-client/internal/handler"
	"eiffel-bike-client/internal/handler/api"
	"eiffel-bike-client/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRentalHandler,
		api.NewMarketplaceHandler,
		api.NewOfferHandler,
		api.NewAppHandler,
		middleware.NewSessionGate,
	),
	fx.Invoke(handler.NewRouter),
)
