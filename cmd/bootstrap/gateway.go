package bootstrap

import (
	"eiffel-bike-client/internal/gateway"
	"eiffel-bike-client/internal/pkg/config"
	"eiffel-bike-client/internal/session"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewBackendClient,
		NewFxClient,
	),
)

func NewFxClient(cfg config.Config) *gateway.FxClient {
	return gateway.NewFxClient(cfg.FX)
}

func NewBackendClient(cfg config.Config, sessions *session.Store) *gateway.Client {
	return gateway.NewClient(cfg.Backend, sessions)
}
