package repositories

import (
	"errors"

	"gorm.io/gorm"

	"reviewdeck_backend/internal/models"
)

var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository reads imported reviews. Writes belong to the ingestion
// job, not this service.
type ReviewRepository interface {
	FindReviewByID(db *gorm.DB, id string) (*models.Review, error)
	// FindReviewWithWidget loads the review together with its location and
	// owning widget, for company scoping during moderation.
	FindReviewWithWidget(db *gorm.DB, id string) (*models.Review, error)
	FindReviewsByLocation(db *gorm.DB, locationID string, limit int) ([]models.Review, error)
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) FindReviewByID(db *gorm.DB, id string) (*models.Review, error) {
	var review models.Review
	err := db.First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindReviewWithWidget(db *gorm.DB, id string) (*models.Review, error) {
	var review models.Review
	err := db.Preload("Location").Preload("Location.Widget").
		First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindReviewsByLocation(db *gorm.DB, locationID string, limit int) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Where("widget_location_id = ?", locationID).
		Order("source_created_at DESC").
		Limit(limit).
		Find(&reviews).Error
	return reviews, err
}
