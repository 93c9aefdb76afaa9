package models

import "gorm.io/datatypes"

// ReviewOverride is a moderator correction applied to a single imported
// review. Absence means the raw review is used unmodified.
type ReviewOverride struct {
	BaseModel
	ReviewID      string `gorm:"type:uuid;not null;uniqueIndex"`
	Hidden        bool   `gorm:"not null;default:false"`
	Pinned        bool   `gorm:"not null;default:false"`
	CustomExcerpt string
	Tags          datatypes.JSON
	Notes         string

	// Relations
	Review Review `gorm:"foreignKey:ReviewID"`
}
