package models

import "time"

// Review is an imported third-party review. Rows are written by the external
// ingestion job only; this service treats them as read-only.
type Review struct {
	BaseModel
	WidgetLocationID string   `gorm:"type:uuid;not null;index"`
	Provider         Provider `gorm:"not null;uniqueIndex:idx_provider_review"`
	ProviderReviewID string   `gorm:"not null;uniqueIndex:idx_provider_review"`
	AuthorName       string   `gorm:"not null"`
	AuthorAvatar     string
	Rating           int `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Text             string
	// Creation time at the source, not the import time.
	SourceCreatedAt time.Time `gorm:"not null;index"`
	DeepLink        string

	// Relations
	Location WidgetLocation  `gorm:"foreignKey:WidgetLocationID"`
	Override *ReviewOverride `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE"`
}
