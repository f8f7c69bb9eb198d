package auth

import (
	"errors"
	"fmt"
)

// ErrUnknownRole is returned for role strings outside the closed set.
var ErrUnknownRole = errors.New("unknown role")

// Role is the closed set of ArenaKita account roles.
type Role string

const (
	RolePlayer     Role = "player"
	RoleManager    Role = "manager"
	RoleSuperadmin Role = "superadmin"
)

// Roles lists every valid role.
var Roles = []Role{RolePlayer, RoleManager, RoleSuperadmin}

// ParseRole converts s into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RolePlayer, RoleManager, RoleSuperadmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

func (r Role) String() string {
	return string(r)
}
