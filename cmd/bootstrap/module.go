package bootstrap

import (
	"eiffel-bike-client/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	SessionModule,
	GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
