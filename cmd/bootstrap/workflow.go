package bootstrap

import (
	"context"
	"log/slog"

	"tripflow/internal/pkg/clock"
	"tripflow/internal/pkg/config"
	"tripflow/internal/workflow"

	"go.uber.org/fx"
)

var WorkflowModule = fx.Module("workflow",
	fx.Provide(
		NewSessionStore,
	),
)

// NewSessionStore builds the per-session controller store and runs the idle
// session sweeper for the lifetime of the app.
func NewSessionStore(lc fx.Lifecycle, cfg config.Config, gw workflow.Gateway, clk clock.Clock, logger *slog.Logger) *workflow.Store {
	store := workflow.NewStore(cfg.Session, gw, clk, logger)

	stop := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go store.RunSweeper(cfg.Session.SweepInterval, stop)
			return nil
		},
		OnStop: func(_ context.Context) error {
			close(stop)
			return nil
		},
	})

	return store
}
