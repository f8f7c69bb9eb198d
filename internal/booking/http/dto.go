package http

import (
	"time"

	"github.com/arenakita/arenakita-backend/internal/booking"
	"github.com/arenakita/arenakita-backend/internal/pkg/request"
)

type CreateBookingRequest struct {
	FieldID string `json:"field_id" binding:"required,uuid"`
	Date    string `json:"date" binding:"required"`
	Hour    *int   `json:"hour" binding:"required,min=0,max=23"`
}

type DayQuery struct {
	Date string `form:"date" binding:"required"`
}

type ListBookingsRequest struct {
	request.ListParams
	Status        string `form:"status" binding:"omitempty,oneof=confirmed cancelled"`
	PaymentStatus string `form:"payment_status" binding:"omitempty,oneof=pending paid"`
	FieldID       string `form:"field_id" binding:"omitempty,uuid"`
	From          string `form:"from"`
	To            string `form:"to"`
}

type PaymentWebhookRequest struct {
	BookingID string `json:"booking_id" binding:"required,uuid"`
	Status    string `json:"status" binding:"required,oneof=paid"`
}

type BookingResponse struct {
	ID            string    `json:"id"`
	FieldID       string    `json:"field_id"`
	FieldName     string    `json:"field_name"`
	VenueID       string    `json:"venue_id"`
	VenueName     string    `json:"venue_name"`
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name,omitempty"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	TotalPrice    int64     `json:"total_price"`
	PaymentStatus string    `json:"payment_status"`
	BookingStatus string    `json:"booking_status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		FieldID:       b.FieldID,
		FieldName:     b.FieldName,
		VenueID:       b.VenueID,
		VenueName:     b.VenueName,
		UserID:        b.UserID,
		UserName:      b.UserName,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		TotalPrice:    b.TotalPrice,
		PaymentStatus: string(b.PaymentStatus),
		BookingStatus: string(b.Status),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// PublicBookingResponse is the anonymous view of a day's bookings; it omits who booked.
type PublicBookingResponse struct {
	ID            string    `json:"id"`
	Hour          int       `json:"hour"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	BookingStatus string    `json:"booking_status"`
}

type SlotResponse struct {
	Hour      int       `json:"hour"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
}

type AvailabilityResponse struct {
	FieldID      string         `json:"field_id"`
	Date         string         `json:"date"`
	OpenHour     int            `json:"open_hour"`
	CloseHour    int            `json:"close_hour"`
	PricePerHour int64          `json:"price_per_hour"`
	Slots        []SlotResponse `json:"slots"`
}

func NewAvailabilityResponse(a *booking.DayAvailability) AvailabilityResponse {
	slots := make([]SlotResponse, len(a.Slots))
	for i, s := range a.Slots {
		slots[i] = SlotResponse{
			Hour:      s.Hour,
			StartTime: s.Start,
			EndTime:   s.End,
			Status:    string(s.Status),
		}
	}
	return AvailabilityResponse{
		FieldID:      a.FieldID,
		Date:         booking.FormatDate(a.Date),
		OpenHour:     a.Hours.Open,
		CloseHour:    a.Hours.Close,
		PricePerHour: a.PricePerHour,
		Slots:        slots,
	}
}
