package bootstrap

import (
	"petstore-backend/internal/handler/middleware"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		middleware.NewMetrics,
	),
)
