package models

// Company owns widgets. Account management lives outside this service; only
// the fields the widget platform reads are modeled here.
type Company struct {
	BaseModel
	Name         string `gorm:"not null"`
	ContactEmail string `gorm:"not null"`

	// Relations
	Widgets []Widget `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}
