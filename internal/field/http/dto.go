package http

import (
	"time"

	"github.com/arenakita/arenakita-backend/internal/field"
)

type CreateFieldRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	PricePerHour *int64 `json:"price_per_hour" binding:"required,min=0"`
	OpenHour     *int   `json:"open_hour" binding:"omitempty,min=0,max=23"`
	CloseHour    *int   `json:"close_hour" binding:"omitempty,min=0,max=23"`
}

type UpdateFieldRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=100"`
	PricePerHour *int64  `json:"price_per_hour" binding:"omitempty,min=0"`
	OpenHour     *int    `json:"open_hour" binding:"omitempty,min=0,max=23"`
	CloseHour    *int    `json:"close_hour" binding:"omitempty,min=0,max=23"`
}

type FieldResponse struct {
	ID           string    `json:"id"`
	VenueID      string    `json:"venue_id"`
	VenueName    string    `json:"venue_name"`
	Name         string    `json:"name"`
	PricePerHour int64     `json:"price_per_hour"`
	OpenHour     int       `json:"open_hour"`
	CloseHour    int       `json:"close_hour"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewFieldResponse(f *field.Field) FieldResponse {
	return FieldResponse{
		ID:           f.ID,
		VenueID:      f.VenueID,
		VenueName:    f.VenueName,
		Name:         f.Name,
		PricePerHour: f.PricePerHour,
		OpenHour:     f.OpenHour,
		CloseHour:    f.CloseHour,
		CreatedAt:    f.CreatedAt,
	}
}
