package services

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"reviewdeck_backend/internal/appErrors"
	"reviewdeck_backend/internal/models"
	"reviewdeck_backend/internal/repositories"
	"reviewdeck_backend/internal/services/dto"
)

type OverrideService interface {
	PutOverride(ctx context.Context, companyID, reviewID string, req *dto.PutOverrideRequest) (*dto.OverrideResponse, error)
	GetOverride(ctx context.Context, companyID, reviewID string) (*dto.OverrideResponse, error)
	ClearOverride(ctx context.Context, companyID, reviewID string) error
}

type overrideService struct {
	db           *gorm.DB
	reviewRepo   repositories.ReviewRepository
	overrideRepo repositories.OverrideRepository
}

func NewOverrideService(db *gorm.DB, reviewRepo repositories.ReviewRepository, overrideRepo repositories.OverrideRepository) OverrideService {
	return &overrideService{
		db:           db,
		reviewRepo:   reviewRepo,
		overrideRepo: overrideRepo,
	}
}

func (s *overrideService) PutOverride(ctx context.Context, companyID, reviewID string, req *dto.PutOverrideRequest) (*dto.OverrideResponse, error) {
	if err := s.checkReviewOwnership(ctx, companyID, reviewID); err != nil {
		return nil, err
	}

	var tags datatypes.JSON
	if len(req.Tags) > 0 {
		raw, err := json.Marshal(req.Tags)
		if err != nil {
			return nil, appErrors.InternalError(err)
		}
		tags = datatypes.JSON(raw)
	}

	override := &models.ReviewOverride{
		ReviewID:      reviewID,
		Hidden:        req.Hidden,
		Pinned:        req.Pinned,
		CustomExcerpt: req.CustomExcerpt,
		Tags:          tags,
		Notes:         req.Notes,
	}
	db := s.db.WithContext(ctx)
	if err := s.overrideRepo.UpsertOverride(db, override); err != nil {
		return nil, mapRepoError(err)
	}
	stored, err := s.overrideRepo.FindOverrideByReviewID(db, reviewID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return buildOverrideResponse(stored), nil
}

func (s *overrideService) GetOverride(ctx context.Context, companyID, reviewID string) (*dto.OverrideResponse, error) {
	if err := s.checkReviewOwnership(ctx, companyID, reviewID); err != nil {
		return nil, err
	}
	override, err := s.overrideRepo.FindOverrideByReviewID(s.db.WithContext(ctx), reviewID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return buildOverrideResponse(override), nil
}

func (s *overrideService) ClearOverride(ctx context.Context, companyID, reviewID string) error {
	if err := s.checkReviewOwnership(ctx, companyID, reviewID); err != nil {
		return err
	}
	if err := s.overrideRepo.DeleteOverrideByReviewID(s.db.WithContext(ctx), reviewID); err != nil {
		return mapRepoError(err)
	}
	return nil
}

// checkReviewOwnership scopes moderation to reviews whose widget belongs to
// the caller's company. Foreign reviews read as not found.
func (s *overrideService) checkReviewOwnership(ctx context.Context, companyID, reviewID string) error {
	review, err := s.reviewRepo.FindReviewWithWidget(s.db.WithContext(ctx), reviewID)
	if err != nil {
		return mapRepoError(err)
	}
	if review.Location.Widget.CompanyID != companyID {
		return appErrors.ReviewNotFound()
	}
	return nil
}

func buildOverrideResponse(o *models.ReviewOverride) *dto.OverrideResponse {
	resp := &dto.OverrideResponse{
		ReviewID:      o.ReviewID,
		Hidden:        o.Hidden,
		Pinned:        o.Pinned,
		CustomExcerpt: o.CustomExcerpt,
		Notes:         o.Notes,
		UpdatedAt:     o.UpdatedAt,
	}
	if len(o.Tags) > 0 {
		// Malformed stored tags degrade to none rather than failing the read.
		_ = json.Unmarshal(o.Tags, &resp.Tags)
	}
	return resp
}
