package field

import (
	"net/http"
	"time"

	"github.com/arenakita/arenakita-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "field not found")
	ErrEmptyName     = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrNegativePrice = apperror.New(http.StatusBadRequest, "price per hour cannot be negative")
	ErrInvalidHours  = apperror.New(http.StatusBadRequest, "operating hours must be within 0..23 and open <= close")
)

// Field is a bookable court or pitch inside a venue.
type Field struct {
	ID           string
	VenueID      string
	VenueName    string
	VenueStatus  string
	ManagerID    string
	Name         string
	PricePerHour int64 // whole rupiah
	OpenHour     int   // first bookable start hour
	CloseHour    int   // last bookable start hour, inclusive
	CreatedAt    time.Time
}

// ValidHours reports whether open..close is a usable operating range.
func ValidHours(open, close int) bool {
	return open >= 0 && close <= 23 && open <= close
}

// Filter defines parameters for listing fields.
type Filter struct {
	VenueID  string
	Page     int
	PageSize int
}

type CreateRequest struct {
	VenueID      string
	Name         string
	PricePerHour int64
	OpenHour     *int
	CloseHour    *int
}

type UpdateRequest struct {
	Name         *string
	PricePerHour *int64
	OpenHour     *int
	CloseHour    *int
}
