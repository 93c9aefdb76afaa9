package dto

import (
	"time"

	"reviewdeck_backend/internal/widgetconfig"
)

// PublicReview is the shape served to embedding pages. No internal ids or
// moderation fields beyond the pinned flag leak through.
type PublicReview struct {
	ID           string    `json:"id"`
	AuthorName   string    `json:"author_name"`
	AuthorAvatar string    `json:"author_avatar,omitempty"`
	Rating       int       `json:"rating"`
	Text         string    `json:"text,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	DeepLink     string    `json:"deep_link,omitempty"`
	Pinned       bool      `json:"pinned"`
}

// PayloadResponse is the complete public embed payload.
type PayloadResponse struct {
	Config  widgetconfig.Document `json:"config"`
	Summary *SummaryResponse      `json:"summary"`
	Reviews []PublicReview        `json:"reviews"`
}
