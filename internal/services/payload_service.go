package services

import (
	"context"

	"gorm.io/gorm"

	"reviewdeck_backend/internal/aggregation"
	"reviewdeck_backend/internal/appErrors"
	"reviewdeck_backend/internal/models"
	"reviewdeck_backend/internal/repositories"
	"reviewdeck_backend/internal/services/dto"
	"reviewdeck_backend/internal/widgetconfig"
)

// perLocationFetchLimit bounds each location's review fetch. It is a safety
// bound on query size, separate from the config's reviews.maxReviews which
// caps the merged set.
const perLocationFetchLimit = 200

// PayloadService builds the public embed payload for published widgets.
type PayloadService interface {
	BuildPayload(ctx context.Context, widgetID string) (*dto.PayloadResponse, error)
}

type payloadService struct {
	db           *gorm.DB
	widgetRepo   repositories.WidgetRepository
	locationRepo repositories.LocationRepository
	reviewRepo   repositories.ReviewRepository
	overrideRepo repositories.OverrideRepository
}

func NewPayloadService(
	db *gorm.DB,
	widgetRepo repositories.WidgetRepository,
	locationRepo repositories.LocationRepository,
	reviewRepo repositories.ReviewRepository,
	overrideRepo repositories.OverrideRepository,
) PayloadService {
	return &payloadService{
		db:           db,
		widgetRepo:   widgetRepo,
		locationRepo: locationRepo,
		reviewRepo:   reviewRepo,
		overrideRepo: overrideRepo,
	}
}

func (s *payloadService) BuildPayload(ctx context.Context, widgetID string) (*dto.PayloadResponse, error) {
	db := s.db.WithContext(ctx)

	widget, err := s.widgetRepo.FindWidgetByID(db, widgetID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	// Absent and draft collapse to the same outcome so embed callers cannot
	// probe for unpublished widgets.
	if !widget.IsPublished() {
		return nil, appErrors.WidgetNotFound()
	}

	cfg := widgetconfig.NormalizeJSON(widget.Config)

	locations, err := s.locationRepo.FindEnabledLocations(db, widgetID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	// Reviews per enabled location, newest first; the flatten order is the
	// location order, which pinned ordering later preserves.
	var all []models.Review
	for _, loc := range locations {
		reviews, err := s.reviewRepo.FindReviewsByLocation(db, loc.ID, perLocationFetchLimit)
		if err != nil {
			return nil, mapRepoError(err)
		}
		all = append(all, reviews...)
	}

	overrideByReview, err := s.loadOverrides(db, all)
	if err != nil {
		return nil, err
	}

	effective := make([]aggregation.EffectiveReview, 0, len(all))
	for i := range all {
		eff, ok := aggregation.Resolve(all[i], overrideByReview[all[i].ID])
		if !ok {
			continue
		}
		effective = append(effective, eff)
	}

	effective = aggregation.Filter(effective, cfg.Reviews)
	effective = aggregation.Order(effective, cfg.Reviews.SortBy)
	effective = aggregation.Cap(effective, cfg.Reviews.MaxReviews)

	out := make([]dto.PublicReview, len(effective))
	for i, eff := range effective {
		out[i] = dto.PublicReview{
			ID:           eff.ID,
			AuthorName:   eff.AuthorName,
			AuthorAvatar: eff.AuthorAvatar,
			Rating:       eff.Rating,
			Text:         eff.Text,
			CreatedAt:    eff.SourceCreatedAt,
			DeepLink:     eff.DeepLink,
			Pinned:       eff.Pinned,
		}
	}

	payload := &dto.PayloadResponse{
		Config:  cfg,
		Reviews: out,
	}
	if widget.Summary != nil {
		payload.Summary = &dto.SummaryResponse{
			AvgRating:    widget.Summary.AvgRating,
			TotalReviews: widget.Summary.TotalReviews,
			LastSyncedAt: widget.Summary.LastSyncedAt,
		}
	}
	return payload, nil
}

// loadOverrides batch-loads the overrides for a review set in one query.
func (s *payloadService) loadOverrides(db *gorm.DB, reviews []models.Review) (map[string]*models.ReviewOverride, error) {
	reviewIDs := make([]string, len(reviews))
	for i := range reviews {
		reviewIDs[i] = reviews[i].ID
	}
	overrides, err := s.overrideRepo.FindOverridesByReviewIDs(db, reviewIDs)
	if err != nil {
		return nil, mapRepoError(err)
	}
	byReview := make(map[string]*models.ReviewOverride, len(overrides))
	for i := range overrides {
		byReview[overrides[i].ReviewID] = &overrides[i]
	}
	return byReview, nil
}
