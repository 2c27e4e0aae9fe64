package bootstrap

import (
	"context"

	"veritag/internal/infra/event"
	"veritag/internal/pkg/config"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) event.Publisher {
	pub := event.NewPublisher(cfg.Events)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			pub.Close()
			return nil
		},
	})

	return pub
}
