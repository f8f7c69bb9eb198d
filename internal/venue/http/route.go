package http

import (
	"github.com/gin-gonic/gin"

	"github.com/arenakita/arenakita-backend/internal/auth"
)

// RegisterRoutes registers venue directory routes.
func RegisterRoutes(r gin.IRouter, h *Handler, authMiddleware, optionalAuth gin.HandlerFunc) {
	venues := r.Group("/venues")
	{
		venues.GET("", h.List)
		venues.GET("/:id", optionalAuth, h.Get)
		venues.POST("", authMiddleware, auth.RequireRole(auth.RoleManager), h.Create)
		venues.PATCH("/:id", authMiddleware, h.Update)
		venues.POST("/:id/photo", authMiddleware, h.UploadPhoto)
	}

	r.GET("/me/venues", authMiddleware, auth.RequireRole(auth.RoleManager), h.ListMine)

	admin := r.Group("/admin/venues")
	admin.Use(authMiddleware, auth.RequireRole(auth.RoleSuperadmin))
	{
		admin.GET("", h.ListForReview)
		admin.POST("/:id/approve", h.Approve)
		admin.POST("/:id/reject", h.Reject)
	}
}
