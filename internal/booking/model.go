package booking

import (
	"net/http"
	"time"

	"github.com/arenakita/arenakita-backend/internal/pkg/apperror"
)

var (
	ErrConflict          = apperror.New(http.StatusConflict, "time slot already booked")
	ErrInvalidHour       = apperror.New(http.StatusBadRequest, "hour is outside the field's operating hours")
	ErrInvalidDate       = apperror.New(http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
	ErrSlotInPast        = apperror.New(http.StatusBadRequest, "cannot book a slot that has already started")
	ErrFieldNotFound     = apperror.New(http.StatusNotFound, "field not found")
	ErrNotFound          = apperror.New(http.StatusNotFound, "booking not found")
	ErrUnauthenticated   = apperror.New(http.StatusUnauthorized, "authentication required")
	ErrPermissionDenied  = apperror.New(http.StatusForbidden, "permission denied")
	ErrInvalidTransition = apperror.New(http.StatusConflict, "booking status does not allow this change")
	ErrStoreUnavailable  = apperror.New(http.StatusServiceUnavailable, "booking store temporarily unavailable, please retry")
)

// Status is the lifecycle state of a booking.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// PaymentStatus tracks whether a confirmed booking has been paid.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Booking reserves one hour of one field.
type Booking struct {
	ID            string
	FieldID       string
	FieldName     string
	VenueID       string
	VenueName     string
	UserID        string
	UserName      string
	StartTime     time.Time
	EndTime       time.Time // always StartTime + SlotDuration
	TotalPrice    int64     // whole rupiah
	PaymentStatus PaymentStatus
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	UserID        string
	VenueID       string
	FieldID       string
	Status        Status
	PaymentStatus PaymentStatus
	From          *time.Time // start_time >= From
	To            *time.Time // start_time < To
	Page          int
	PageSize      int
}

// CreateRequest asks for the slot starting at Hour:00 on Date.
// Only the calendar day of Date is used.
type CreateRequest struct {
	FieldID string
	Date    time.Time
	Hour    int
}

// DayAvailability is the slot calendar of one field for one day.
type DayAvailability struct {
	FieldID      string
	Date         time.Time
	Hours        OperatingHours
	PricePerHour int64
	Slots        []Slot
}
