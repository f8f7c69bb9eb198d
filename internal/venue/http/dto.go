package http

import (
	"time"

	"github.com/arenakita/arenakita-backend/internal/media"
	"github.com/arenakita/arenakita-backend/internal/pkg/request"
	"github.com/arenakita/arenakita-backend/internal/venue"
)

type ListVenuesRequest struct {
	request.ListParams
	City  string `form:"city"`
	Query string `form:"q"`
}

type ListReviewRequest struct {
	request.ListParams
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	City   string `form:"city"`
	Query  string `form:"q"`
}

type CreateVenueRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	City        string `json:"city" binding:"required,max=100"`
	Address     string `json:"address" binding:"max=500"`
	Description string `json:"description" binding:"max=5000"`
}

type UpdateVenueRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=200"`
	City        *string `json:"city" binding:"omitempty,max=100"`
	Address     *string `json:"address" binding:"omitempty,max=500"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
}

type RejectVenueRequest struct {
	Reason string `json:"reason" binding:"required,max=1000"`
}

type VenueResponse struct {
	ID              string    `json:"id"`
	ManagerID       string    `json:"manager_id"`
	ManagerName     string    `json:"manager_name"`
	Name            string    `json:"name"`
	City            string    `json:"city"`
	Address         string    `json:"address"`
	Description     string    `json:"description"`
	Status          string    `json:"status"`
	RejectionReason *string   `json:"rejection_reason,omitempty"`
	CoverPhotoURL   *string   `json:"cover_photo_url"`
	CoverThumbURL   *string   `json:"cover_thumbnail_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewVenueResponse(v *venue.Venue) VenueResponse {
	resp := VenueResponse{
		ID:              v.ID,
		ManagerID:       v.ManagerID,
		ManagerName:     v.ManagerName,
		Name:            v.Name,
		City:            v.City,
		Address:         v.Address,
		Description:     v.Description,
		Status:          string(v.Status),
		RejectionReason: v.RejectionReason,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
	if v.CoverPhotoID != nil {
		url := media.FileURL(*v.CoverPhotoID)
		thumb := media.ThumbnailURL(*v.CoverPhotoID)
		resp.CoverPhotoURL = &url
		resp.CoverThumbURL = &thumb
	}
	return resp
}
