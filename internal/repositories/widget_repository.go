package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"reviewdeck_backend/internal/models"
)

var (
	ErrWidgetNotFound  = errors.New("widget not found")
	ErrCompanyNotFound = errors.New("company not found")
)

type WidgetRepository interface {
	CreateWidget(db *gorm.DB, widget *models.Widget) error
	FindWidgetByID(db *gorm.DB, id string) (*models.Widget, error)
	FindWidgetsByCompany(db *gorm.DB, companyID string) ([]models.Widget, error)
	UpdateWidgetFields(db *gorm.DB, id string, fields map[string]interface{}) error
	DeleteWidget(db *gorm.DB, id string) error
	CountWidgetsByCompany(db *gorm.DB, companyID string) (int64, error)

	FindCompanyByID(db *gorm.DB, id string) (*models.Company, error)
}

type WidgetRepositoryImpl struct{}

func NewWidgetRepository() WidgetRepository {
	return &WidgetRepositoryImpl{}
}

func (r *WidgetRepositoryImpl) CreateWidget(db *gorm.DB, widget *models.Widget) error {
	return db.Create(widget).Error
}

func (r *WidgetRepositoryImpl) FindWidgetByID(db *gorm.DB, id string) (*models.Widget, error) {
	var widget models.Widget
	err := db.Preload("Summary").First(&widget, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWidgetNotFound
		}
		return nil, err
	}
	return &widget, nil
}

func (r *WidgetRepositoryImpl) FindWidgetsByCompany(db *gorm.DB, companyID string) ([]models.Widget, error) {
	var widgets []models.Widget
	err := db.Preload("Summary").
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&widgets).Error
	return widgets, err
}

func (r *WidgetRepositoryImpl) UpdateWidgetFields(db *gorm.DB, id string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	result := db.Model(&models.Widget{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWidgetNotFound
	}
	return nil
}

func (r *WidgetRepositoryImpl) DeleteWidget(db *gorm.DB, id string) error {
	// Locations, reviews, overrides and the summary row go with the widget
	// through the FK cascade constraints.
	result := db.Where("id = ?", id).Delete(&models.Widget{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWidgetNotFound
	}
	return nil
}

func (r *WidgetRepositoryImpl) CountWidgetsByCompany(db *gorm.DB, companyID string) (int64, error) {
	var count int64
	err := db.Model(&models.Widget{}).Where("company_id = ?", companyID).Count(&count).Error
	return count, err
}

func (r *WidgetRepositoryImpl) FindCompanyByID(db *gorm.DB, id string) (*models.Company, error) {
	var company models.Company
	err := db.First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}
