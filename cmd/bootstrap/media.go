package bootstrap

import (
	"context"

	"veritag/internal/infra/media"
	"veritag/internal/pkg/config"

	"go.uber.org/fx"
)

var MediaModule = fx.Module("media",
	fx.Provide(
		NewMediaStore,
	),
)

func NewMediaStore(cfg config.Config) (*media.S3Store, error) {
	return media.NewS3Store(context.Background(), cfg.Media)
}
