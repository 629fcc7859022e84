package components

import (
	"eiffel-bike-client/internal/gateway"
	"eiffel-bike-client/internal/pkg/clock"
	"eiffel-bike-client/internal/pkg/config"
	"eiffel-bike-client/internal/session"
	"eiffel-bike-client/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseWorkflowsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config, clk clock.Clock) *usecase.Notifier {
		return usecase.NewNotifier(cfg.Session.AlertTTL, clk)
	},
	fx.Annotate(
		func(c *gateway.Client) *gateway.Client { return c },
		fx.As(new(usecase.AuthGateway)),
		fx.As(new(usecase.RentalGateway)),
		fx.As(new(usecase.MarketGateway)),
		fx.As(new(usecase.OfferGateway)),
	),
	fx.Annotate(
		func(c *gateway.FxClient) *gateway.FxClient { return c },
		fx.As(new(usecase.FxGateway)),
	),
)

var usecaseWorkflowsModule = fx.Module("usecase/workflows",
	fx.Provide(
		usecase.NewAuthWorkflow,
		usecase.NewFxService,
		func(g usecase.RentalGateway, s *session.Store, n *usecase.Notifier, cfg config.Config) usecase.RentalWorkflow {
			return usecase.NewRentalWorkflow(g, s, n, cfg.Session.ReadyTimeout)
		},
		func(g usecase.MarketGateway, s *session.Store, n *usecase.Notifier, cfg config.Config) usecase.MarketplaceWorkflow {
			return usecase.NewMarketplaceWorkflow(g, s, n, cfg.Session.ReadyTimeout)
		},
		func(g usecase.OfferGateway, s *session.Store, n *usecase.Notifier, cfg config.Config) usecase.OfferWorkflow {
			return usecase.NewOfferWorkflow(g, s, n, cfg.Session.ReadyTimeout)
		},
	),
)
