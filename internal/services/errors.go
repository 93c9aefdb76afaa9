package services

import (
	"errors"

	"reviewdeck_backend/internal/appErrors"
	"reviewdeck_backend/internal/repositories"
)

// mapRepoError translates repository sentinels into application errors;
// anything else is a storage failure and propagates unchanged inside a
// DATABASE_ERROR wrapper, never retried here.
func mapRepoError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrWidgetNotFound):
		return appErrors.WidgetNotFound()
	case errors.Is(err, repositories.ErrLocationNotFound):
		return appErrors.LocationNotFound()
	case errors.Is(err, repositories.ErrReviewNotFound):
		return appErrors.ReviewNotFound()
	case errors.Is(err, repositories.ErrOverrideNotFound):
		return appErrors.OverrideNotFound()
	case errors.Is(err, repositories.ErrDuplicateLocation):
		return appErrors.DuplicateLocation()
	case errors.Is(err, repositories.ErrCompanyNotFound):
		return appErrors.WidgetNotFound()
	default:
		return appErrors.DatabaseError(err)
	}
}
