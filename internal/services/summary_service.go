package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"reviewdeck_backend/internal/logger"
	"reviewdeck_backend/internal/repositories"
	"reviewdeck_backend/internal/services/dto"
)

// SummaryService recomputes the cached per-widget aggregate. It is invoked
// by the external ingestion job after a sync finishes, never by payload
// reads.
type SummaryService interface {
	Refresh(ctx context.Context, widgetID string) (*dto.SummaryResponse, error)
}

type summaryService struct {
	db          *gorm.DB
	widgetRepo  repositories.WidgetRepository
	summaryRepo repositories.SummaryRepository
}

func NewSummaryService(db *gorm.DB, widgetRepo repositories.WidgetRepository, summaryRepo repositories.SummaryRepository) SummaryService {
	return &summaryService{
		db:          db,
		widgetRepo:  widgetRepo,
		summaryRepo: summaryRepo,
	}
}

func (s *summaryService) Refresh(ctx context.Context, widgetID string) (*dto.SummaryResponse, error) {
	db := s.db.WithContext(ctx)

	// Drafts get summaries too; the publish gate applies to payload reads
	// only.
	if _, err := s.widgetRepo.FindWidgetByID(db, widgetID); err != nil {
		return nil, mapRepoError(err)
	}

	avgRating, totalReviews, err := s.summaryRepo.ComputeSummary(db, widgetID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	summary, err := s.summaryRepo.UpsertSummary(db, widgetID, avgRating, totalReviews, time.Now())
	if err != nil {
		return nil, mapRepoError(err)
	}

	logger.Info("widget summary refreshed",
		"widget_id", widgetID,
		"avg_rating", summary.AvgRating,
		"total_reviews", summary.TotalReviews,
	)

	return &dto.SummaryResponse{
		AvgRating:    summary.AvgRating,
		TotalReviews: summary.TotalReviews,
		LastSyncedAt: summary.LastSyncedAt,
	}, nil
}
