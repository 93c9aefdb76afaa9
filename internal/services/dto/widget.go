package dto

import (
	"encoding/json"
	"time"

	"reviewdeck_backend/internal/widgetconfig"
)

// ======================
// Request DTOs
// ======================

type CreateWidgetRequest struct {
	Name string `json:"name" validate:"required,max=120"`
	Type string `json:"type" validate:"omitempty,is-layout-type"`
	// Template selects a named preset for the initial config; unknown
	// names fall back to the baseline.
	Template string `json:"template,omitempty" validate:"omitempty,max=40"`
}

type UpdateWidgetRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,max=120"`
	Type *string `json:"type,omitempty" validate:"omitempty,is-layout-type"`
}

// UpdateWidgetConfigRequest carries the raw authored config tree. It is
// normalized, never rejected.
type UpdateWidgetConfigRequest struct {
	Config json.RawMessage `json:"config" validate:"required"`
}

type NormalizeConfigRequest struct {
	Config json.RawMessage `json:"config" validate:"required"`
}

// ======================
// Response DTOs
// ======================

type WidgetResponse struct {
	ID          string                `json:"id"`
	CompanyID   string                `json:"company_id"`
	Name        string                `json:"name"`
	Type        string                `json:"type"`
	Status      string                `json:"status"`
	PublishedAt *time.Time            `json:"published_at,omitempty"`
	Config      widgetconfig.Document `json:"config"`
	Summary     *SummaryResponse      `json:"summary,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

type WidgetListResponse struct {
	Widgets []*WidgetResponse `json:"widgets"`
	Total   int64             `json:"total"`
}

type SummaryResponse struct {
	AvgRating    float64   `json:"avg_rating"`
	TotalReviews int64     `json:"total_reviews"`
	LastSyncedAt time.Time `json:"last_synced_at"`
}

type TemplateListResponse struct {
	Templates []string `json:"templates"`
}
