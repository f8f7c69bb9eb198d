package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(m *JWTManager, seen *Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthRequired(m), func(c *gin.Context) {
		*seen = GetPrincipal(c)
		c.Status(http.StatusOK)
	})
	r.GET("/admin", AuthRequired(m), RequireRole(RoleSuperadmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/optional", OptionalAuth(m), func(c *gin.Context) {
		*seen = GetPrincipal(c)
		c.Status(http.StatusOK)
	})
	return r
}

func doGet(r http.Handler, path, token string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestAuthRequired(t *testing.T) {
	m := NewJWTManager("secret", time.Minute)
	var seen Principal
	r := newTestRouter(m, &seen)

	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/me", ""))
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/me", "garbage"))

	token, err := m.GenerateAccessToken("u1", "p@example.com", RolePlayer)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doGet(r, "/me", token))
	assert.Equal(t, Principal{UserID: "u1", Email: "p@example.com", Role: RolePlayer}, seen)
}

func TestRequireRole(t *testing.T) {
	m := NewJWTManager("secret", time.Minute)
	var seen Principal
	r := newTestRouter(m, &seen)

	player, err := m.GenerateAccessToken("u1", "p@example.com", RolePlayer)
	require.NoError(t, err)
	admin, err := m.GenerateAccessToken("u2", "s@example.com", RoleSuperadmin)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, doGet(r, "/admin", player))
	assert.Equal(t, http.StatusOK, doGet(r, "/admin", admin))
}

func TestOptionalAuth(t *testing.T) {
	m := NewJWTManager("secret", time.Minute)
	var seen Principal
	r := newTestRouter(m, &seen)

	assert.Equal(t, http.StatusOK, doGet(r, "/optional", ""))
	assert.False(t, seen.Authenticated())

	token, err := m.GenerateAccessToken("u3", "m@example.com", RoleManager)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, doGet(r, "/optional", token))
	assert.Equal(t, "u3", seen.UserID)
	assert.Equal(t, RoleManager, seen.Role)
}
