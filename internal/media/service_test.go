package media_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/arenakita/arenakita-backend/internal/media"
	media_mocks "github.com/arenakita/arenakita-backend/internal/media/mocks"
	"github.com/arenakita/arenakita-backend/internal/pkg/storage"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// fileHeader round-trips content through a multipart form, the way gin receives it.
func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("photo", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(10<<20))
	return req.MultipartForm.File["photo"][0]
}

type testDeps struct {
	repo    *media_mocks.MockRepository
	dir     string
	service media.Service
	ctx     context.Context
}

func newTestDeps(t *testing.T) testDeps {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)

	repo := media_mocks.NewMockRepository(gomock.NewController(t))
	return testDeps{
		repo:    repo,
		dir:     dir,
		service: media.NewService(repo, store, slog.New(slog.NewTextHandler(io.Discard, nil))),
		ctx:     context.Background(),
	}
}

func TestUploadCoverPhoto(t *testing.T) {
	d := newTestDeps(t)

	var saved *media.File
	d.repo.EXPECT().Create(d.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, f *media.File) error {
		saved = f
		return nil
	})

	f, err := d.service.Upload(d.ctx, media.UploadInput{
		FileHeader:   fileHeader(t, "court.png", pngBytes(t, 400, 300)),
		UserID:       "m1",
		MaxSizeBytes: 5 << 20,
		AllowedTypes: []string{"image/jpeg", "image/png"},
		CoverWidth:   160,
		CoverHeight:  90,
	})
	require.NoError(t, err)
	require.Same(t, saved, f)

	assert.Equal(t, "image/jpeg", f.ContentType)
	assert.Equal(t, ".jpg", filepath.Ext(f.StoragePath))
	require.NotNil(t, f.ThumbnailPath)

	stored, err := os.ReadFile(filepath.Join(d.dir, filepath.FromSlash(f.StoragePath)))
	require.NoError(t, err)
	img, _, err := image.Decode(bytes.NewReader(stored))
	require.NoError(t, err)
	assert.Equal(t, 160, img.Bounds().Dx())
	assert.Equal(t, 90, img.Bounds().Dy())
}

func TestUploadRejects(t *testing.T) {
	t.Run("too large", func(t *testing.T) {
		d := newTestDeps(t)
		_, err := d.service.Upload(d.ctx, media.UploadInput{
			FileHeader:   fileHeader(t, "big.png", pngBytes(t, 64, 64)),
			MaxSizeBytes: 16,
		})
		assert.ErrorIs(t, err, media.ErrFileTooLarge)
	})

	t.Run("sniffed type wins over extension", func(t *testing.T) {
		d := newTestDeps(t)
		_, err := d.service.Upload(d.ctx, media.UploadInput{
			FileHeader:   fileHeader(t, "photo.png", []byte("#!/bin/sh\necho hi\n")),
			AllowedTypes: []string{"image/jpeg", "image/png"},
		})
		assert.ErrorIs(t, err, media.ErrUnsupportedType)
	})
}

func TestUploadRollsBackBlobsOnStoreFailure(t *testing.T) {
	d := newTestDeps(t)
	d.repo.EXPECT().Create(d.ctx, gomock.Any()).Return(errors.New("db down"))

	_, err := d.service.Upload(d.ctx, media.UploadInput{
		FileHeader: fileHeader(t, "court.png", pngBytes(t, 64, 64)),
	})
	require.Error(t, err)

	var files []string
	require.NoError(t, filepath.WalkDir(d.dir, func(path string, e os.DirEntry, err error) error {
		if err == nil && !e.IsDir() {
			files = append(files, path)
		}
		return err
	}))
	assert.Empty(t, files)
}

func TestDownloadThumbnailMissing(t *testing.T) {
	d := newTestDeps(t)
	d.repo.EXPECT().GetByID(d.ctx, "f1").Return(&media.File{ID: "f1", StoragePath: "upload/f1/f1.pdf"}, nil)

	_, _, err := d.service.DownloadThumbnail(d.ctx, "f1")
	assert.ErrorIs(t, err, media.ErrNoThumbnail)
}
