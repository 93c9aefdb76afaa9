package dto

import "time"

// PutOverrideRequest replaces the moderation override for one review.
type PutOverrideRequest struct {
	Hidden        bool     `json:"hidden"`
	Pinned        bool     `json:"pinned"`
	CustomExcerpt string   `json:"custom_excerpt,omitempty" validate:"omitempty,max=2000"`
	Tags          []string `json:"tags,omitempty" validate:"omitempty,max=20,dive,max=40"`
	Notes         string   `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type OverrideResponse struct {
	ReviewID      string    `json:"review_id"`
	Hidden        bool      `json:"hidden"`
	Pinned        bool      `json:"pinned"`
	CustomExcerpt string    `json:"custom_excerpt,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}
