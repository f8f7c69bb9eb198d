package http

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arenakita/arenakita-backend/internal/auth"
	"github.com/arenakita/arenakita-backend/internal/booking"
	"github.com/arenakita/arenakita-backend/internal/pkg/request"
	"github.com/arenakita/arenakita-backend/internal/pkg/response"
)

// WebhookSecretHeader carries the shared secret of the payment collaborator.
const WebhookSecretHeader = "X-Webhook-Secret"

type Handler struct {
	service       booking.Service
	loc           *time.Location
	webhookSecret string
}

func NewHandler(service booking.Service, loc *time.Location, webhookSecret string) *Handler {
	return &Handler{
		service:       service,
		loc:           loc,
		webhookSecret: webhookSecret,
	}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	date, err := booking.ParseDate(body.Date, h.loc)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), auth.GetPrincipal(c), booking.CreateRequest{
		FieldID: body.FieldID,
		Date:    date,
		Hour:    *body.Hour,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

// Availability returns the slot calendar of a field for one day.
func (h *Handler) Availability(c *gin.Context) {
	fieldID, date, ok := h.bindFieldDay(c)
	if !ok {
		return
	}

	a, err := h.service.Availability(c.Request.Context(), fieldID, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewAvailabilityResponse(a))
}

// DayBookings lists a field's confirmed bookings for one day without booker details.
func (h *Handler) DayBookings(c *gin.Context) {
	fieldID, date, ok := h.bindFieldDay(c)
	if !ok {
		return
	}

	bookings, err := h.service.ListBookings(c.Request.Context(), fieldID, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]PublicBookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = PublicBookingResponse{
			ID:            b.ID,
			Hour:          b.StartTime.In(h.loc).Hour(),
			StartTime:     b.StartTime,
			EndTime:       b.EndTime,
			BookingStatus: string(b.Status),
		}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) bindFieldDay(c *gin.Context) (string, time.Time, bool) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid field id"})
		return "", time.Time{}, false
	}

	var q DayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return "", time.Time{}, false
	}

	date, err := booking.ParseDate(q.Date, h.loc)
	if err != nil {
		response.Error(c, err)
		return "", time.Time{}, false
	}
	return uri.ID, date, true
}

func (h *Handler) ListMine(c *gin.Context) {
	filter, params, ok := h.bindList(c)
	if !ok {
		return
	}

	bookings, total, err := h.service.ListMyBookings(c.Request.Context(), auth.GetPrincipal(c), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MapPage(bookings, NewBookingResponse, params, total))
}

func (h *Handler) ListVenue(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid venue id"})
		return
	}

	filter, params, ok := h.bindList(c)
	if !ok {
		return
	}

	bookings, total, err := h.service.ListVenueBookings(c.Request.Context(), auth.GetPrincipal(c), uri.ID, filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MapPage(bookings, NewBookingResponse, params, total))
}

func (h *Handler) bindList(c *gin.Context) (booking.Filter, request.ListParams, bool) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return booking.Filter{}, request.ListParams{}, false
	}
	req.Normalize()

	filter := booking.Filter{
		FieldID:       req.FieldID,
		Status:        booking.Status(req.Status),
		PaymentStatus: booking.PaymentStatus(req.PaymentStatus),
		Page:          req.Page,
		PageSize:      req.PageSize,
	}

	// from/to are calendar days; to is inclusive.
	if req.From != "" {
		d, err := booking.ParseDate(req.From, h.loc)
		if err != nil {
			response.Error(c, err)
			return booking.Filter{}, request.ListParams{}, false
		}
		from, _ := booking.DayBounds(d, h.loc)
		filter.From = &from
	}
	if req.To != "" {
		d, err := booking.ParseDate(req.To, h.loc)
		if err != nil {
			response.Error(c, err)
			return booking.Filter{}, request.ListParams{}, false
		}
		_, to := booking.DayBounds(d, h.loc)
		filter.To = &to
	}

	return filter, req.ListParams, true
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), auth.GetPrincipal(c), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Cancel(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	b, err := h.service.CancelBooking(c.Request.Context(), auth.GetPrincipal(c), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// PaymentWebhook is called by the payment collaborator once a booking is paid.
func (h *Handler) PaymentWebhook(c *gin.Context) {
	secret := c.GetHeader(WebhookSecretHeader)
	if h.webhookSecret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(h.webhookSecret)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid webhook secret"})
		return
	}

	var body PaymentWebhookRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	b, err := h.service.MarkPaid(c.Request.Context(), body.BookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}
