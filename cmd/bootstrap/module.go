package bootstrap

import (
	"tripflow/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	GatewayModule,
	WorkflowModule,
	components.HandlerModule,
)
