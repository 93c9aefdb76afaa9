package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"reviewdeck_backend/internal/config"
	"reviewdeck_backend/internal/email"
	"reviewdeck_backend/internal/handlers"
	"reviewdeck_backend/internal/logger"
	"reviewdeck_backend/internal/middleware"
	"reviewdeck_backend/internal/models"
	"reviewdeck_backend/internal/routes"
	"reviewdeck_backend/internal/services"
	"reviewdeck_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(cfg, serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		emailProvider = email.NewSMTPProvider(cfg)
		logger.Info("SMTP email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		emailProvider = &email.MockProvider{}
		logger.Warn("No SMTP host configured, using mock email provider")
	}

	return services.NewServiceContainer(gormDB, emailProvider)
}

func initializeHandlers(cfg *config.Config, container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		WidgetHandler:   handlers.NewWidgetHandler(baseHandler, container.WidgetService),
		LocationHandler: handlers.NewLocationHandler(baseHandler, container.LocationService),
		OverrideHandler: handlers.NewOverrideHandler(baseHandler, container.OverrideService),
		ConfigHandler:   handlers.NewConfigHandler(baseHandler),
		EmbedHandler:    handlers.NewEmbedHandler(baseHandler, container.PayloadService, cfg),
		SummaryHandler:  handlers.NewSummaryHandler(baseHandler, container.SummaryService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Company{},
		&models.Widget{},
		&models.WidgetLocation{},
		&models.Review{},
		&models.ReviewOverride{},
		&models.WidgetSummary{},
	)
}
