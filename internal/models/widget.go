package models

import (
	"time"

	"gorm.io/datatypes"
)

type Widget struct {
	BaseModel
	CompanyID string       `gorm:"type:uuid;not null;index"`
	Name      string       `gorm:"not null"`
	Type      string       `gorm:"not null;default:'carousel'"`
	Status    WidgetStatus `gorm:"not null;default:'draft';index"`
	// Set on the first draft -> published transition only; never reset.
	PublishedAt *time.Time
	Config      datatypes.JSON `gorm:"not null"`

	// Relations
	Company   Company          `gorm:"foreignKey:CompanyID"`
	Locations []WidgetLocation `gorm:"foreignKey:WidgetID;constraint:OnDelete:CASCADE"`
	Summary   *WidgetSummary   `gorm:"foreignKey:WidgetID;constraint:OnDelete:CASCADE"`
}

func (w *Widget) IsPublished() bool {
	return w.Status == WidgetStatusPublished
}
