package app

import (
	"smart_learning_path/docs"
	"smart_learning_path/internal/config"
	"smart_learning_path/internal/middleware"
	"smart_learning_path/pkg/monitoring"
	"smart_learning_path/pkg/security"
	"smart_learning_path/pkg/tracing"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func newRouter(cfg *config.Config, c *controllers, log *zap.Logger) *gin.Engine {
	router := gin.New()
	setupMiddlewares(router, cfg, log)
	registerRoutes(router, c, cfg)
	return router
}

func setupMiddlewares(router *gin.Engine, cfg *config.Config, log *zap.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogger(log))
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/" + cfg.Server.APIVersion
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	router.GET("/", c.health.Root)
	router.GET("/health", c.health.HealthCheck)

	api := router.Group("/" + cfg.Server.APIVersion)
	{
		paths := api.Group("/learning-paths")
		{
			paths.POST("/generate", c.learningPath.Generate)
			paths.GET("", c.learningPath.List)
			paths.GET("/:id", c.learningPath.Get)
			paths.DELETE("/:id", c.learningPath.Delete)
		}

		api.POST("/quiz/generate", c.quiz.Generate)
	}
}
