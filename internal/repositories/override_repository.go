package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"reviewdeck_backend/internal/models"
)

var ErrOverrideNotFound = errors.New("override not found")

type OverrideRepository interface {
	// UpsertOverride creates or replaces the single override row for a
	// review (1:1, keyed by review_id).
	UpsertOverride(db *gorm.DB, override *models.ReviewOverride) error
	FindOverrideByReviewID(db *gorm.DB, reviewID string) (*models.ReviewOverride, error)
	FindOverridesByReviewIDs(db *gorm.DB, reviewIDs []string) ([]models.ReviewOverride, error)
	DeleteOverrideByReviewID(db *gorm.DB, reviewID string) error
}

type OverrideRepositoryImpl struct{}

func NewOverrideRepository() OverrideRepository {
	return &OverrideRepositoryImpl{}
}

func (r *OverrideRepositoryImpl) UpsertOverride(db *gorm.DB, override *models.ReviewOverride) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "review_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"hidden":         override.Hidden,
			"pinned":         override.Pinned,
			"custom_excerpt": override.CustomExcerpt,
			"tags":           override.Tags,
			"notes":          override.Notes,
			"updated_at":     time.Now(),
		}),
	}).Create(override).Error
}

func (r *OverrideRepositoryImpl) FindOverrideByReviewID(db *gorm.DB, reviewID string) (*models.ReviewOverride, error) {
	var override models.ReviewOverride
	err := db.First(&override, "review_id = ?", reviewID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOverrideNotFound
		}
		return nil, err
	}
	return &override, nil
}

func (r *OverrideRepositoryImpl) FindOverridesByReviewIDs(db *gorm.DB, reviewIDs []string) ([]models.ReviewOverride, error) {
	var overrides []models.ReviewOverride
	if len(reviewIDs) == 0 {
		return overrides, nil
	}
	err := db.Where("review_id IN ?", reviewIDs).Find(&overrides).Error
	return overrides, err
}

func (r *OverrideRepositoryImpl) DeleteOverrideByReviewID(db *gorm.DB, reviewID string) error {
	result := db.Where("review_id = ?", reviewID).Delete(&models.ReviewOverride{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOverrideNotFound
	}
	return nil
}
