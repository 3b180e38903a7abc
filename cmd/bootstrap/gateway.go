package bootstrap

import (
	"log/slog"

	"tripflow/internal/gateway"
	"tripflow/internal/handler/api"
	"tripflow/internal/pkg/clock"
	"tripflow/internal/pkg/config"
	"tripflow/internal/workflow"

	"go.uber.org/fx"
)

// GatewayModule wires the travel-backend HTTP client and the narrow
// interfaces each consumer sees. The workflow and the passthrough handlers
// share one client but depend on their own slice of it.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewGatewayClient,
		clock.NewRealClock,
		func(c *gateway.Client) workflow.Gateway { return c },
		func(c *gateway.Client) api.BookingReader { return c },
		func(c *gateway.Client) api.ItineraryReader { return c },
		func(c *gateway.Client) api.PreferenceReader { return c },
		func(c *gateway.Client) api.AuthGateway { return c },
	),
)

func NewGatewayClient(cfg config.Config, logger *slog.Logger) *gateway.Client {
	return gateway.NewClient(cfg.Backend, logger)
}
