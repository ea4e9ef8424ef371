package components

import (
	"petstore-backend/internal/handler"
	"petstore-backend/internal/handler/api"
	"petstore-backend/internal/handler/graphql"
	"petstore-backend/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPromotionHandler,
		api.NewCategoryHandler,
		api.NewProductHandler,
		graphql.NewResolver,
		graphql.NewHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	promotion *api.PromotionHandler,
	category *api.CategoryHandler,
	product *api.ProductHandler,
	gql *graphql.Handler,
) handler.Handlers {
	return handler.Handlers{
		Auth:      auth,
		Promotion: promotion,
		Category:  category,
		Product:   product,
		GraphQL:   gql,
	}
}
