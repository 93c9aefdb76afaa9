package services

import (
	"gorm.io/gorm"

	"reviewdeck_backend/internal/email"
	"reviewdeck_backend/internal/repositories"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	WidgetService   WidgetService
	LocationService LocationService
	OverrideService OverrideService
	PayloadService  PayloadService
	SummaryService  SummaryService
}

func NewServiceContainer(db *gorm.DB, emailer email.Provider) *ServiceContainer {
	widgetRepo := repositories.NewWidgetRepository()
	locationRepo := repositories.NewLocationRepository()
	reviewRepo := repositories.NewReviewRepository()
	overrideRepo := repositories.NewOverrideRepository()
	summaryRepo := repositories.NewSummaryRepository()

	return &ServiceContainer{
		WidgetService:   NewWidgetService(db, widgetRepo, emailer),
		LocationService: NewLocationService(db, widgetRepo, locationRepo),
		OverrideService: NewOverrideService(db, reviewRepo, overrideRepo),
		PayloadService:  NewPayloadService(db, widgetRepo, locationRepo, reviewRepo, overrideRepo),
		SummaryService:  NewSummaryService(db, widgetRepo, summaryRepo),
	}
}
