package user

import (
	"fmt"

	"github.com/arenakita/arenakita-backend/internal/auth"
)

// Dashboard describes the landing view a role is sent to after login.
type Dashboard struct {
	Role        auth.Role
	Title       string
	Description string
	Sections    []string
}

// DashboardFor returns the dashboard descriptor of role.
// Every role must be handled here; an unknown role is an error, never an empty view.
func DashboardFor(role auth.Role) (Dashboard, error) {
	switch role {
	case auth.RolePlayer:
		return Dashboard{
			Role:        role,
			Title:       "Player dashboard",
			Description: "Booking history and upcoming games.",
			Sections:    []string{"venues", "my_bookings"},
		}, nil
	case auth.RoleManager:
		return Dashboard{
			Role:        role,
			Title:       "Venue manager dashboard",
			Description: "Manage venues and fields, and review incoming bookings.",
			Sections:    []string{"my_venues", "fields", "venue_bookings"},
		}, nil
	case auth.RoleSuperadmin:
		return Dashboard{
			Role:        role,
			Title:       "Superadmin dashboard",
			Description: "Manage users, venue approvals and platform settings.",
			Sections:    []string{"users", "venue_approvals", "venues"},
		}, nil
	default:
		return Dashboard{}, fmt.Errorf("dashboard: %w: %q", auth.ErrUnknownRole, role)
	}
}
