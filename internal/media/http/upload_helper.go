package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arenakita/arenakita-backend/internal/auth"
	"github.com/arenakita/arenakita-backend/internal/media"
	"github.com/arenakita/arenakita-backend/internal/pkg/response"
)

// FileUploadConfig defines the configuration for generic file uploads
type FileUploadConfig struct {
	FormFieldName string   // form field containing the file (default: "file")
	MaxSizeBytes  int64    // 0 = no limit
	AllowedTypes  []string // sniffed MIME types; empty = allow all
	CoverWidth    int      // crop images to CoverWidth x CoverHeight when both are set
	CoverHeight   int
	// AfterUpload runs after the file is stored; on error the upload is rolled back.
	AfterUpload func(ctx context.Context, fileID string) error
}

// HandleFileUpload is a reusable handler for multipart uploads.
func (h *Handler) HandleFileUpload(c *gin.Context, config FileUploadConfig) {
	userID := auth.GetUserID(c)

	fieldName := config.FormFieldName
	if fieldName == "" {
		fieldName = "file"
	}

	fileHeader, err := c.FormFile(fieldName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fieldName + " is required"})
		return
	}

	ctx := c.Request.Context()

	f, err := h.fileService.Upload(ctx, media.UploadInput{
		FileHeader:   fileHeader,
		UserID:       userID,
		MaxSizeBytes: config.MaxSizeBytes,
		AllowedTypes: config.AllowedTypes,
		CoverWidth:   config.CoverWidth,
		CoverHeight:  config.CoverHeight,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if config.AfterUpload != nil {
		if err := config.AfterUpload(ctx, f.ID); err != nil {
			if delErr := h.fileService.Delete(ctx, f.ID); delErr != nil {
				slog.WarnContext(ctx, "upload rollback failed", "file_id", f.ID, "err", delErr)
			}
			response.Error(c, err)
			return
		}
	}

	var thumbURL *string
	if f.ThumbnailPath != nil {
		t := media.ThumbnailURL(f.ID)
		thumbURL = &t
	}

	c.JSON(http.StatusOK, FileUploadResponse{
		Message:      "file uploaded successfully",
		FileID:       f.ID,
		URL:          media.FileURL(f.ID),
		ThumbnailURL: thumbURL,
	})
}
