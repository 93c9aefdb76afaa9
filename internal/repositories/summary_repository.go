package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"reviewdeck_backend/internal/models"
)

var ErrSummaryNotFound = errors.New("summary not found")

type SummaryRepository interface {
	// ComputeSummary aggregates over all reviews of the widget's locations
	// whose override is absent or not hidden.
	ComputeSummary(db *gorm.DB, widgetID string) (avgRating float64, totalReviews int64, err error)
	// UpsertSummary writes the single summary row for a widget.
	UpsertSummary(db *gorm.DB, widgetID string, avgRating float64, totalReviews int64, syncedAt time.Time) (*models.WidgetSummary, error)
	FindSummaryByWidget(db *gorm.DB, widgetID string) (*models.WidgetSummary, error)
}

type SummaryRepositoryImpl struct{}

func NewSummaryRepository() SummaryRepository {
	return &SummaryRepositoryImpl{}
}

func (r *SummaryRepositoryImpl) ComputeSummary(db *gorm.DB, widgetID string) (float64, int64, error) {
	var stats struct {
		AvgRating    float64
		TotalReviews int64
	}
	err := db.Model(&models.Review{}).
		Select("COALESCE(AVG(reviews.rating), 0) AS avg_rating, COUNT(*) AS total_reviews").
		Joins("JOIN widget_locations ON widget_locations.id = reviews.widget_location_id").
		Joins("LEFT JOIN review_overrides ON review_overrides.review_id = reviews.id").
		Where("widget_locations.widget_id = ?", widgetID).
		Where("review_overrides.id IS NULL OR review_overrides.hidden = ?", false).
		Scan(&stats).Error
	if err != nil {
		return 0, 0, err
	}
	return stats.AvgRating, stats.TotalReviews, nil
}

func (r *SummaryRepositoryImpl) UpsertSummary(db *gorm.DB, widgetID string, avgRating float64, totalReviews int64, syncedAt time.Time) (*models.WidgetSummary, error) {
	summary := models.WidgetSummary{
		WidgetID:     widgetID,
		AvgRating:    avgRating,
		TotalReviews: totalReviews,
		LastSyncedAt: syncedAt,
	}
	// Last writer wins; recomputation is deterministic so a concurrent
	// refresh race is safe.
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "widget_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"avg_rating":     avgRating,
			"total_reviews":  totalReviews,
			"last_synced_at": syncedAt,
			"updated_at":     time.Now(),
		}),
	}).Create(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *SummaryRepositoryImpl) FindSummaryByWidget(db *gorm.DB, widgetID string) (*models.WidgetSummary, error) {
	var summary models.WidgetSummary
	err := db.First(&summary, "widget_id = ?", widgetID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSummaryNotFound
		}
		return nil, err
	}
	return &summary, nil
}
