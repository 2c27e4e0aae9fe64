package components

import (
	"veritag/internal/infra/db"
	"veritag/internal/infra/event"
	"veritag/internal/infra/media"
	"veritag/internal/infra/readstore"
	repo_impl "veritag/internal/infra/repository"
	"veritag/internal/usecase/commands"
	"veritag/internal/usecase/queries"
	"veritag/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			shared.NewPgxTxManager,
			fx.As(new(shared.TxManager)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewProductRepository,
			fx.As(new(commands.ProductRepository)),
			fx.As(new(commands.ProductReader)),
		),
		fx.Annotate(
			repo_impl.NewCodeRepository,
			fx.As(new(commands.CodeStore)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
		),
		fx.Annotate(
			readstore.NewCodeReadStore,
			fx.As(new(queries.CodeReadStore)),
		),
		// Media and events back the command ports
		fx.Annotate(
			func(s *media.S3Store) *media.S3Store { return s },
			fx.As(new(commands.MediaStore)),
			fx.As(new(queries.ImageURLResolver)),
		),
		fx.Annotate(
			func(p event.Publisher) event.Publisher { return p },
			fx.As(new(commands.EventPublisher)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
