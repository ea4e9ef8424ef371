package components

import (
	"petstore-backend/internal/infra/repository"
	"petstore-backend/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repository.NewPromotionRepository,
			fx.As(new(usecase.PromotionRepository)),
		),
		fx.Annotate(
			repository.NewStatusRepository,
			fx.As(new(usecase.StatusRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repository.NewCategoryRepository,
			fx.As(new(usecase.CategoryRepository)),
		),
		fx.Annotate(
			repository.NewProductRepository,
			fx.As(new(usecase.ProductRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repository.DBTX {
	return pool
}
