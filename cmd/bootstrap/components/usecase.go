package components

import (
	"petstore-backend/internal/pkg/clock"
	"petstore-backend/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewPromotionUseCase,
		usecase.NewCategoryUseCase,
		usecase.NewProductUseCase,
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
	),
)
