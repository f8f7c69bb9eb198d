package user

import (
	"net/http"
	"time"

	"github.com/arenakita/arenakita-backend/internal/auth"
	"github.com/arenakita/arenakita-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailAlreadyUsed   = apperror.New(http.StatusConflict, "email already used")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid email or password")
	ErrInactiveUser       = apperror.New(http.StatusUnauthorized, "invalid email or password")
	ErrEmailRequired      = apperror.New(http.StatusBadRequest, "email is required")
	ErrPasswordTooShort   = apperror.New(http.StatusBadRequest, "password is too short")
	ErrRoleNotAllowed     = apperror.New(http.StatusBadRequest, "role cannot be self-assigned")
	ErrInvalidRole        = apperror.New(http.StatusBadRequest, "invalid role")
)

// User is an account profile.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	FullName     string
	Role         auth.Role
	IsActive     bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// Principal returns the identity the user acts as.
func (u *User) Principal() auth.Principal {
	return auth.Principal{UserID: u.ID, Email: u.Email, Role: u.Role}
}

// UserFilter defines filter options for listing users.
type UserFilter struct {
	Email    string
	FullName string
	Role     auth.Role
	IsActive *bool // nil means not filtered

	Page     int
	PageSize int
}

// UpdateUserRequest carries the attributes a superadmin may change.
type UpdateUserRequest struct {
	FullName *string
	Role     *auth.Role
	IsActive *bool
}
