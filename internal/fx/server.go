package fx

import (
	"context"

	"github.com/IdrisAkintobi/altfolio/config"
	docs "github.com/IdrisAkintobi/altfolio/docs"
	"github.com/IdrisAkintobi/altfolio/internal/logger"
	"github.com/IdrisAkintobi/altfolio/internal/middleware"
	"github.com/IdrisAkintobi/altfolio/internal/routes"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go.uber.org/fx"
)

// ServerModule provides the HTTP server setup
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter(cfg *config.Config) *gin.Engine {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	jwtSvc *middleware.JwtService,
	authRateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())

	docs.SwaggerInfo.BasePath = "/api/v1"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", handler.Health)

	public := router.Group("/api/v1")
	public.Use(middleware.RateLimit(authRateLimiter))
	{
		public.POST("/auth/login", handler.Authenticate)
		public.POST("/auth/register", handler.Registration)
	}

	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(jwtSvc))
	private.Use(middleware.RateLimitByUser())
	{
		private.GET("/auth/me", handler.Me)

		assets := private.Group("/assets")
		{
			assets.GET("", handler.ListAssets)
			assets.GET("/types", handler.GetAssetTypes)
			assets.GET("/type/:type", handler.GetAssetsByType)
			assets.GET("/:id", handler.GetAsset)
			assets.GET("/:id/performance-history", handler.GetAssetPerformanceHistory)

			assets.POST("", middleware.RequireAdmin(), handler.CreateAsset)
			assets.PATCH("/:id", middleware.RequireAdmin(), handler.UpdateAsset)
			assets.PATCH("/:id/performance", middleware.RequireAdmin(), handler.UpdateAssetPerformance)
			assets.DELETE("/:id", middleware.RequireAdmin(), handler.DeleteAsset)
		}

		investments := private.Group("/investments")
		{
			investments.POST("", handler.CreateInvestment)
			investments.GET("", handler.ListInvestments)
			investments.GET("/:id", handler.GetInvestment)
			investments.DELETE("/:id", handler.DeleteInvestment)
		}

		users := private.Group("/users")
		users.Use(middleware.RequireAdmin())
		{
			users.GET("", handler.ListUsers)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Server starting")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Server stopping...")
			return nil
		},
	})
}
