package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arenakita/arenakita-backend/internal/auth"
	mediaHttp "github.com/arenakita/arenakita-backend/internal/media/http"
	"github.com/arenakita/arenakita-backend/internal/pkg/request"
	"github.com/arenakita/arenakita-backend/internal/pkg/response"
	"github.com/arenakita/arenakita-backend/internal/venue"
)

const (
	maxPhotoBytes = 5 << 20
	coverWidth    = 1280
	coverHeight   = 720
)

var photoTypes = []string{"image/jpeg", "image/png"}

type Handler struct {
	service     venue.Service
	fileHandler *mediaHttp.Handler
}

func NewHandler(service venue.Service, fileHandler *mediaHttp.Handler) *Handler {
	return &Handler{service: service, fileHandler: fileHandler}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateVenueRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	v, err := h.service.Register(c.Request.Context(), auth.GetPrincipal(c), venue.CreateRequest{
		Name:        body.Name,
		City:        body.City,
		Address:     body.Address,
		Description: body.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewVenueResponse(v))
}

// List is the public catalogue of approved venues.
func (h *Handler) List(c *gin.Context) {
	var req ListVenuesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	req.Normalize()

	venues, total, err := h.service.ListApproved(c.Request.Context(), venue.Filter{
		City:     req.City,
		Query:    req.Query,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MapPage(venues, NewVenueResponse, req.ListParams, total))
}

func (h *Handler) ListMine(c *gin.Context) {
	var req request.ListParams
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	req.Normalize()

	venues, total, err := h.service.ListMine(c.Request.Context(), auth.GetPrincipal(c), venue.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MapPage(venues, NewVenueResponse, req, total))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid venue id"})
		return
	}

	v, err := h.service.Get(c.Request.Context(), auth.GetPrincipal(c), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewVenueResponse(v))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid venue id"})
		return
	}

	var body UpdateVenueRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	v, err := h.service.Update(c.Request.Context(), auth.GetPrincipal(c), uri.ID, venue.UpdateRequest{
		Name:        body.Name,
		City:        body.City,
		Address:     body.Address,
		Description: body.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewVenueResponse(v))
}

// UploadPhoto stores a cover photo and links it to the venue.
func (h *Handler) UploadPhoto(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid venue id"})
		return
	}

	p := auth.GetPrincipal(c)

	// Check before accepting the upload so unauthorized callers store nothing.
	if err := h.service.CheckManage(c.Request.Context(), p, uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	h.fileHandler.HandleFileUpload(c, mediaHttp.FileUploadConfig{
		FormFieldName: "photo",
		MaxSizeBytes:  maxPhotoBytes,
		AllowedTypes:  photoTypes,
		CoverWidth:    coverWidth,
		CoverHeight:   coverHeight,
		AfterUpload: func(ctx context.Context, fileID string) error {
			_, err := h.service.SetCoverPhoto(ctx, p, uri.ID, fileID)
			return err
		},
	})
}

// ListForReview lists venues of any status for the superadmin.
func (h *Handler) ListForReview(c *gin.Context) {
	var req ListReviewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	req.Normalize()

	venues, total, err := h.service.ListForReview(c.Request.Context(), venue.Filter{
		Status:   venue.Status(req.Status),
		City:     req.City,
		Query:    req.Query,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MapPage(venues, NewVenueResponse, req.ListParams, total))
}

func (h *Handler) Approve(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid venue id"})
		return
	}

	v, err := h.service.Approve(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewVenueResponse(v))
}

func (h *Handler) Reject(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid venue id"})
		return
	}

	var body RejectVenueRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	v, err := h.service.Reject(c.Request.Context(), uri.ID, body.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewVenueResponse(v))
}
