package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers booking ledger routes.
func RegisterRoutes(r gin.IRouter, h *Handler, authMiddleware gin.HandlerFunc) {
	// Public calendar
	r.GET("/fields/:id/availability", h.Availability)
	r.GET("/fields/:id/bookings", h.DayBookings)

	bookings := r.Group("/bookings")
	bookings.Use(authMiddleware)
	{
		bookings.POST("", h.Create)
		bookings.GET("", h.ListMine)
		bookings.GET("/:id", h.Get)
		bookings.POST("/:id/cancel", h.Cancel)
	}

	r.GET("/venues/:id/bookings", authMiddleware, h.ListVenue)

	// Authenticated by shared secret, not JWT.
	r.POST("/payments/webhook", h.PaymentWebhook)
}
