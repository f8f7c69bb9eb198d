package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/arenakita/arenakita-backend/internal/auth"
	"github.com/arenakita/arenakita-backend/internal/user"
	user_mocks "github.com/arenakita/arenakita-backend/internal/user/mocks"
)

func TestRequireSuperadmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	tests := []struct {
		name       string
		role       auth.Role
		stored     *user.User
		storeErr   error
		wantStatus int
	}{
		{"active superadmin", auth.RoleSuperadmin, &user.User{ID: "a1", Role: auth.RoleSuperadmin, IsActive: true}, nil, http.StatusOK},
		{"demoted since login", auth.RoleSuperadmin, &user.User{ID: "a1", Role: auth.RoleManager, IsActive: true}, nil, http.StatusForbidden},
		{"deactivated", auth.RoleSuperadmin, &user.User{ID: "a1", Role: auth.RoleSuperadmin}, nil, http.StatusForbidden},
		{"deleted", auth.RoleSuperadmin, nil, user.ErrNotFound, http.StatusUnauthorized},
		{"manager token", auth.RoleManager, nil, nil, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := user_mocks.NewMockRepository(gomock.NewController(t))
			if tt.stored != nil || tt.storeErr != nil {
				repo.EXPECT().GetByID(gomock.Any(), "a1").Return(tt.stored, tt.storeErr)
			}
			service := user.NewService(repo, auth.NewBcryptPasswordHasherWithCost(4), slog.New(slog.NewTextHandler(io.Discard, nil)))

			r := gin.New()
			r.GET("/admin", auth.AuthRequired(jwtManager), RequireSuperadmin(service), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			token, err := jwtManager.GenerateAccessToken("a1", "admin@example.com", tt.role)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestSplitOrigins(t *testing.T) {
	assert.Equal(t, []string{"https://arenakita.id", "https://admin.arenakita.id"},
		splitOrigins(" https://arenakita.id, ,https://admin.arenakita.id "))
	assert.Nil(t, splitOrigins(""))
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(Config{
		JWTManager: auth.NewJWTManager("test-secret", time.Hour),
		Location:   time.UTC,
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
