// Package aggregation holds the pure pieces of payload building: override
// resolution, filter policy and ordering. No I/O happens here.
package aggregation

import (
	"time"

	"reviewdeck_backend/internal/models"
)

// EffectiveReview is a review after override resolution, ready for display.
type EffectiveReview struct {
	ID              string
	AuthorName      string
	AuthorAvatar    string
	Rating          int
	Text            string
	SourceCreatedAt time.Time
	DeepLink        string
	Pinned          bool
}

// Resolve merges a review with its optional moderation override. The second
// return value is false when the override hides the review entirely. Pinned
// passes through as a flag; it affects ordering downstream, not inclusion.
func Resolve(r models.Review, o *models.ReviewOverride) (EffectiveReview, bool) {
	eff := EffectiveReview{
		ID:              r.ID,
		AuthorName:      r.AuthorName,
		AuthorAvatar:    r.AuthorAvatar,
		Rating:          r.Rating,
		Text:            r.Text,
		SourceCreatedAt: r.SourceCreatedAt,
		DeepLink:        r.DeepLink,
	}
	if o == nil {
		return eff, true
	}
	if o.Hidden {
		return EffectiveReview{}, false
	}
	if o.CustomExcerpt != "" {
		eff.Text = o.CustomExcerpt
	}
	eff.Pinned = o.Pinned
	return eff, true
}
