package dto

import "time"

type AddLocationRequest struct {
	Provider string `json:"provider" validate:"required,is-provider"`
	PlaceID  string `json:"place_id" validate:"required,max=200"`
	Label    string `json:"label,omitempty" validate:"omitempty,max=120"`
	Weight   *int   `json:"weight,omitempty" validate:"omitempty,min=1,max=100"`
}

type UpdateLocationRequest struct {
	Label   *string `json:"label,omitempty" validate:"omitempty,max=120"`
	Weight  *int    `json:"weight,omitempty" validate:"omitempty,min=1,max=100"`
	Enabled *bool   `json:"enabled,omitempty"`
}

type LocationResponse struct {
	ID        string    `json:"id"`
	WidgetID  string    `json:"widget_id"`
	Provider  string    `json:"provider"`
	PlaceID   string    `json:"place_id"`
	Label     string    `json:"label,omitempty"`
	Weight    int       `json:"weight"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
}

type LocationListResponse struct {
	Locations []*LocationResponse `json:"locations"`
}
