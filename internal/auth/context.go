package auth

import (
	"github.com/gin-gonic/gin"
)

const (
	ctxKeyUserID    = "userID"
	ctxKeyUserEmail = "userEmail"
	ctxKeyUserRole  = "userRole"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID string
	Email  string
	Role   Role
}

// Authenticated reports whether the principal carries a user identity.
func (p Principal) Authenticated() bool {
	return p.UserID != ""
}

// IsSuperadmin reports whether the principal has platform-wide access.
func (p Principal) IsSuperadmin() bool {
	return p.Role == RoleSuperadmin
}

// GetUserID returns the authenticated user's ID or empty string.
func GetUserID(c *gin.Context) string {
	return c.GetString(ctxKeyUserID)
}

// GetUserEmail returns the authenticated user's email or empty string.
func GetUserEmail(c *gin.Context) string {
	return c.GetString(ctxKeyUserEmail)
}

// GetRole returns the authenticated user's role or empty string.
func GetRole(c *gin.Context) Role {
	if v, ok := c.Get(ctxKeyUserRole); ok {
		if r, ok := v.(Role); ok {
			return r
		}
	}
	return ""
}

// GetPrincipal returns the authenticated caller of the gin request.
func GetPrincipal(c *gin.Context) Principal {
	return Principal{
		UserID: GetUserID(c),
		Email:  GetUserEmail(c),
		Role:   GetRole(c),
	}
}

// setPrincipal stores p on the gin context.
func setPrincipal(c *gin.Context, p Principal) {
	c.Set(ctxKeyUserID, p.UserID)
	c.Set(ctxKeyUserEmail, p.Email)
	c.Set(ctxKeyUserRole, p.Role)
}
