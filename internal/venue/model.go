package venue

import (
	"net/http"
	"time"

	"github.com/arenakita/arenakita-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "venue not found")
	ErrPermissionDenied  = apperror.New(http.StatusForbidden, "permission denied")
	ErrNameRequired      = apperror.New(http.StatusBadRequest, "venue name is required")
	ErrCityRequired      = apperror.New(http.StatusBadRequest, "venue city is required")
	ErrNotPending        = apperror.New(http.StatusConflict, "only pending venues can be reviewed")
	ErrReasonRequired    = apperror.New(http.StatusBadRequest, "rejection reason is required")
	ErrInvalidStatus     = apperror.New(http.StatusBadRequest, "invalid venue status")
	ErrManagerRoleNeeded = apperror.New(http.StatusForbidden, "only managers can register venues")
)

// Status is the approval state of a venue registration.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ParseStatus converts s into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

type Venue struct {
	ID              string
	ManagerID       string
	ManagerName     string
	Name            string
	City            string
	Address         string
	Description     string
	Status          Status
	RejectionReason *string
	CoverPhotoID    *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Filter struct {
	ManagerID string
	Status    Status
	City      string
	Query     string // matches name
	Page      int
	PageSize  int
}

type CreateRequest struct {
	Name        string
	City        string
	Address     string
	Description string
}

type UpdateRequest struct {
	Name        *string
	City        *string
	Address     *string
	Description *string
}
