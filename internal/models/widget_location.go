package models

// WidgetLocation links a widget to one external review source. Disabling a
// location removes its reviews from aggregation without deleting data.
type WidgetLocation struct {
	BaseModel
	WidgetID string   `gorm:"type:uuid;not null;index;uniqueIndex:idx_widget_place"`
	Provider Provider `gorm:"not null"`
	PlaceID  string   `gorm:"not null;uniqueIndex:idx_widget_place"`
	Label    string
	Weight   int  `gorm:"not null;default:1"`
	Enabled  bool `gorm:"not null;default:true"`

	// Relations
	Widget  Widget   `gorm:"foreignKey:WidgetID"`
	Reviews []Review `gorm:"foreignKey:WidgetLocationID;constraint:OnDelete:CASCADE"`
}
