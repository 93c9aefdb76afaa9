package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "reviewdeck_backend/docs"
	"reviewdeck_backend/internal/handlers"
	"reviewdeck_backend/internal/logger"
)

// RegisterRoutes mounts every HTTP route of the application.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.WidgetHandler.RegisterRoutes(api)
		appHandlers.LocationHandler.RegisterRoutes(api)
		appHandlers.OverrideHandler.RegisterRoutes(api)
		appHandlers.ConfigHandler.RegisterRoutes(api)
		appHandlers.SummaryHandler.RegisterRoutes(api)

		// The embed payload is the only unauthenticated surface.
		appHandlers.EmbedHandler.RegisterRoutes(api)
	}

	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ginRouter.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	logger.Info("Routes registered", "base_path", "/api/v1")
}
