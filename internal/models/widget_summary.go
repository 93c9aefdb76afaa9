package models

import "time"

// WidgetSummary is the cached aggregate for one widget, recomputed wholesale
// after each review sync. Derived data, never the source of truth.
type WidgetSummary struct {
	BaseModel
	WidgetID     string    `gorm:"type:uuid;not null;uniqueIndex"`
	AvgRating    float64   `gorm:"not null;default:0"`
	TotalReviews int64     `gorm:"not null;default:0"`
	LastSyncedAt time.Time `gorm:"not null"`
}
