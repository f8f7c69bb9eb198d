package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers field directory routes.
func RegisterRoutes(r gin.IRouter, h *Handler, authMiddleware, optionalAuth gin.HandlerFunc) {
	r.GET("/venues/:id/fields", optionalAuth, h.ListByVenue)
	r.POST("/venues/:id/fields", authMiddleware, h.Create)

	fields := r.Group("/fields")
	{
		fields.GET("/:id", optionalAuth, h.Get)
		fields.PATCH("/:id", authMiddleware, h.Update)
	}
}
