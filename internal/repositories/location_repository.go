package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"reviewdeck_backend/internal/models"
)

var (
	ErrLocationNotFound  = errors.New("location not found")
	ErrDuplicateLocation = errors.New("place is already linked to this widget")
)

type LocationRepository interface {
	CreateLocation(db *gorm.DB, location *models.WidgetLocation) error
	FindLocationByID(db *gorm.DB, id string) (*models.WidgetLocation, error)
	FindLocationsByWidget(db *gorm.DB, widgetID string) ([]models.WidgetLocation, error)
	FindEnabledLocations(db *gorm.DB, widgetID string) ([]models.WidgetLocation, error)
	UpdateLocationFields(db *gorm.DB, id string, fields map[string]interface{}) error
	DeleteLocation(db *gorm.DB, id string) error
}

type LocationRepositoryImpl struct{}

func NewLocationRepository() LocationRepository {
	return &LocationRepositoryImpl{}
}

func (r *LocationRepositoryImpl) CreateLocation(db *gorm.DB, location *models.WidgetLocation) error {
	// (widget_id, place_id) is unique; check first for a clean error instead
	// of surfacing the constraint violation.
	var existing models.WidgetLocation
	err := db.Where("widget_id = ? AND place_id = ?", location.WidgetID, location.PlaceID).
		First(&existing).Error
	if err == nil {
		return ErrDuplicateLocation
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(location).Error
}

func (r *LocationRepositoryImpl) FindLocationByID(db *gorm.DB, id string) (*models.WidgetLocation, error) {
	var location models.WidgetLocation
	err := db.First(&location, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}
	return &location, nil
}

func (r *LocationRepositoryImpl) FindLocationsByWidget(db *gorm.DB, widgetID string) ([]models.WidgetLocation, error) {
	var locations []models.WidgetLocation
	err := db.Where("widget_id = ?", widgetID).
		Order("created_at ASC").
		Find(&locations).Error
	return locations, err
}

func (r *LocationRepositoryImpl) FindEnabledLocations(db *gorm.DB, widgetID string) ([]models.WidgetLocation, error) {
	var locations []models.WidgetLocation
	err := db.Where("widget_id = ? AND enabled = ?", widgetID, true).
		Order("created_at ASC").
		Find(&locations).Error
	return locations, err
}

func (r *LocationRepositoryImpl) UpdateLocationFields(db *gorm.DB, id string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	result := db.Model(&models.WidgetLocation{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLocationNotFound
	}
	return nil
}

func (r *LocationRepositoryImpl) DeleteLocation(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.WidgetLocation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLocationNotFound
	}
	return nil
}
