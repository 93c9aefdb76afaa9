package services

import (
	"context"

	"gorm.io/gorm"

	"reviewdeck_backend/internal/appErrors"
	"reviewdeck_backend/internal/models"
	"reviewdeck_backend/internal/repositories"
	"reviewdeck_backend/internal/services/dto"
)

type LocationService interface {
	AddLocation(ctx context.Context, companyID, widgetID string, req *dto.AddLocationRequest) (*dto.LocationResponse, error)
	ListLocations(ctx context.Context, companyID, widgetID string) (*dto.LocationListResponse, error)
	UpdateLocation(ctx context.Context, companyID, locationID string, req *dto.UpdateLocationRequest) (*dto.LocationResponse, error)
	DeleteLocation(ctx context.Context, companyID, locationID string) error
}

type locationService struct {
	db           *gorm.DB
	widgetRepo   repositories.WidgetRepository
	locationRepo repositories.LocationRepository
}

func NewLocationService(db *gorm.DB, widgetRepo repositories.WidgetRepository, locationRepo repositories.LocationRepository) LocationService {
	return &locationService{
		db:           db,
		widgetRepo:   widgetRepo,
		locationRepo: locationRepo,
	}
}

func (s *locationService) AddLocation(ctx context.Context, companyID, widgetID string, req *dto.AddLocationRequest) (*dto.LocationResponse, error) {
	if err := s.checkWidgetOwnership(ctx, companyID, widgetID); err != nil {
		return nil, err
	}

	weight := 1
	if req.Weight != nil {
		weight = *req.Weight
	}
	location := &models.WidgetLocation{
		WidgetID: widgetID,
		Provider: models.Provider(req.Provider),
		PlaceID:  req.PlaceID,
		Label:    req.Label,
		Weight:   weight,
		Enabled:  true,
	}
	if err := s.locationRepo.CreateLocation(s.db.WithContext(ctx), location); err != nil {
		return nil, mapRepoError(err)
	}
	return buildLocationResponse(location), nil
}

func (s *locationService) ListLocations(ctx context.Context, companyID, widgetID string) (*dto.LocationListResponse, error) {
	if err := s.checkWidgetOwnership(ctx, companyID, widgetID); err != nil {
		return nil, err
	}

	locations, err := s.locationRepo.FindLocationsByWidget(s.db.WithContext(ctx), widgetID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	out := make([]*dto.LocationResponse, len(locations))
	for i := range locations {
		out[i] = buildLocationResponse(&locations[i])
	}
	return &dto.LocationListResponse{Locations: out}, nil
}

func (s *locationService) UpdateLocation(ctx context.Context, companyID, locationID string, req *dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	location, err := s.ownedLocation(ctx, companyID, locationID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Label != nil {
		fields["label"] = *req.Label
	}
	if req.Weight != nil {
		fields["weight"] = *req.Weight
	}
	if req.Enabled != nil {
		fields["enabled"] = *req.Enabled
	}
	if len(fields) == 0 {
		return buildLocationResponse(location), nil
	}

	db := s.db.WithContext(ctx)
	if err := s.locationRepo.UpdateLocationFields(db, locationID, fields); err != nil {
		return nil, mapRepoError(err)
	}
	location, err = s.locationRepo.FindLocationByID(db, locationID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return buildLocationResponse(location), nil
}

func (s *locationService) DeleteLocation(ctx context.Context, companyID, locationID string) error {
	if _, err := s.ownedLocation(ctx, companyID, locationID); err != nil {
		return err
	}
	if err := s.locationRepo.DeleteLocation(s.db.WithContext(ctx), locationID); err != nil {
		return mapRepoError(err)
	}
	return nil
}

func (s *locationService) checkWidgetOwnership(ctx context.Context, companyID, widgetID string) error {
	widget, err := s.widgetRepo.FindWidgetByID(s.db.WithContext(ctx), widgetID)
	if err != nil {
		return mapRepoError(err)
	}
	if widget.CompanyID != companyID {
		return appErrors.WidgetNotFound()
	}
	return nil
}

func (s *locationService) ownedLocation(ctx context.Context, companyID, locationID string) (*models.WidgetLocation, error) {
	location, err := s.locationRepo.FindLocationByID(s.db.WithContext(ctx), locationID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if err := s.checkWidgetOwnership(ctx, companyID, location.WidgetID); err != nil {
		return nil, appErrors.LocationNotFound()
	}
	return location, nil
}

func buildLocationResponse(l *models.WidgetLocation) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:        l.ID,
		WidgetID:  l.WidgetID,
		Provider:  string(l.Provider),
		PlaceID:   l.PlaceID,
		Label:     l.Label,
		Weight:    l.Weight,
		Enabled:   l.Enabled,
		CreatedAt: l.CreatedAt,
	}
}
