package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"petstore-backend/internal/handler/api"
	"petstore-backend/internal/handler/graphql"
	"petstore-backend/internal/handler/middleware"
	"petstore-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Promotion *api.PromotionHandler
	Category  *api.CategoryHandler
	Product   *api.ProductHandler
	GraphQL   *graphql.Handler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware, metrics *middleware.Metrics) {
	setupMiddleware(engine, cfg, metrics)
	setupRoutes(engine, handlers, authMiddleware, metrics)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, metrics *middleware.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(metrics.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, metrics *middleware.Metrics) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// queries are public; mutations check the principal themselves
	gql := engine.Group("/graphql")
	gql.Use(authMiddleware.OptionalAuth())
	{
		addRoutes(gql, []route{
			{Method: http.MethodPost, Path: "", Handler: h.GraphQL.Serve},
			{Method: http.MethodGet, Path: "", Handler: h.GraphQL.Serve},
		})
	}

	requireAuth := []gin.HandlerFunc{authMiddleware.RequireAuth()}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodGet, Path: "/status", Handler: h.Auth.Status},
				{Method: http.MethodGet, Path: "/verify", Handler: h.Auth.Verify, Mw: requireAuth},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: requireAuth},
			})
		}

		promotions := apiGroup.Group("/promotions")
		{
			addRoutes(promotions, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Promotion.ListActive},
				{Method: http.MethodGet, Path: "/all", Handler: h.Promotion.ListAll},
				{Method: http.MethodGet, Path: "/valid", Handler: h.Promotion.ListValid},
				{Method: http.MethodGet, Path: "/status", Handler: h.Promotion.Status},
				{Method: http.MethodGet, Path: "/category/:categoryId", Handler: h.Promotion.ListByCategory},
			})
		}

		categories := apiGroup.Group("/categories")
		{
			addRoutes(categories, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Category.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Category.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Category.Create, Mw: requireAuth},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Category.Update, Mw: requireAuth},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Category.Delete, Mw: requireAuth},
			})
		}

		products := apiGroup.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Product.List},
				{Method: http.MethodGet, Path: "/search", Handler: h.Product.Search},
				{Method: http.MethodGet, Path: "/price-range", Handler: h.Product.ListByPriceRange},
				{Method: http.MethodGet, Path: "/category/:categoryId", Handler: h.Product.ListByCategory},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Product.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Product.Create, Mw: requireAuth},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Product.Update, Mw: requireAuth},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Product.Delete, Mw: requireAuth},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
