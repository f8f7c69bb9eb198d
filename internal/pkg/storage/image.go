package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
)

// ImageProcessor produces JPEG renditions of uploaded venue photos.
type ImageProcessor struct {
	quality int
}

// NewImageProcessor creates a new ImageProcessor.
func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{quality: 80}
}

// GenerateThumbnail fits the source image into maxWidth x maxHeight, keeping the aspect ratio.
func (p *ImageProcessor) GenerateThumbnail(content io.Reader, maxWidth, maxHeight int) (io.Reader, error) {
	img, _, err := image.Decode(content)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return p.encode(imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos))
}

// CoverCrop crops the source image to exactly width x height around its center,
// which is how venue cards render cover photos.
func (p *ImageProcessor) CoverCrop(content io.Reader, width, height int) (io.Reader, error) {
	img, _, err := image.Decode(content)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return p.encode(imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos))
}

func (p *ImageProcessor) encode(img image.Image) (io.Reader, error) {
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf, nil
}
