package field_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/arenakita/arenakita-backend/internal/field"
	field_mocks "github.com/arenakita/arenakita-backend/internal/field/mocks"
)

func TestDirectoryCachesLookups(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := field_mocks.NewMockRepository(ctrl)
	dir := field.NewDirectory(repo, time.Minute)

	repo.EXPECT().GetByID(ctx, "f1").Return(&field.Field{ID: "f1", VenueStatus: "approved", PricePerHour: 100000}, nil).Times(1)

	first, err := dir.Get(ctx, "f1")
	require.NoError(t, err)
	second, err := dir.Get(ctx, "f1")
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// Callers get copies; mutating one must not poison the cache.
	first.PricePerHour = 1
	third, err := dir.Get(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, int64(100000), third.PricePerHour)
}

func TestDirectoryInvalidate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := field_mocks.NewMockRepository(ctrl)
	dir := field.NewDirectory(repo, time.Minute)

	gomock.InOrder(
		repo.EXPECT().GetByID(ctx, "f1").Return(&field.Field{ID: "f1", VenueStatus: "approved", PricePerHour: 100000}, nil),
		repo.EXPECT().GetByID(ctx, "f1").Return(&field.Field{ID: "f1", VenueStatus: "approved", PricePerHour: 150000}, nil),
	)

	f, err := dir.Get(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, int64(100000), f.PricePerHour)

	dir.Invalidate("f1")

	f, err = dir.Get(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, int64(150000), f.PricePerHour)
}

func TestDirectoryDoesNotCacheMisses(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := field_mocks.NewMockRepository(ctrl)
	dir := field.NewDirectory(repo, time.Minute)

	repo.EXPECT().GetByID(ctx, "f404").Return(nil, field.ErrNotFound).Times(2)

	_, err := dir.Get(ctx, "f404")
	assert.ErrorIs(t, err, field.ErrNotFound)
	_, err = dir.Get(ctx, "f404")
	assert.ErrorIs(t, err, field.ErrNotFound)
}

func TestDirectorySkipsUnapprovedVenues(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := field_mocks.NewMockRepository(ctrl)
	dir := field.NewDirectory(repo, time.Minute)

	gomock.InOrder(
		repo.EXPECT().GetByID(ctx, "f1").Return(&field.Field{ID: "f1", VenueStatus: "pending"}, nil),
		repo.EXPECT().GetByID(ctx, "f1").Return(&field.Field{ID: "f1", VenueStatus: "approved"}, nil),
	)

	f, err := dir.Get(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, "pending", f.VenueStatus)

	// Approval is visible immediately.
	f, err = dir.Get(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, "approved", f.VenueStatus)
}

func TestDirectoryVenueChanged(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := field_mocks.NewMockRepository(ctrl)
	dir := field.NewDirectory(repo, time.Minute)

	gomock.InOrder(
		repo.EXPECT().GetByID(ctx, "f1").Return(&field.Field{ID: "f1", VenueID: "v1", VenueName: "GOR Lama", VenueStatus: "approved"}, nil),
		repo.EXPECT().GetByID(ctx, "f2").Return(&field.Field{ID: "f2", VenueID: "v2", VenueName: "Arena Senayan", VenueStatus: "approved"}, nil),
		repo.EXPECT().GetByID(ctx, "f1").Return(&field.Field{ID: "f1", VenueID: "v1", VenueName: "GOR Baru", VenueStatus: "approved"}, nil),
	)

	_, err := dir.Get(ctx, "f1")
	require.NoError(t, err)
	_, err = dir.Get(ctx, "f2")
	require.NoError(t, err)

	dir.VenueChanged("v1")

	f1, err := dir.Get(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, "GOR Baru", f1.VenueName)

	// Fields of other venues stay cached.
	f2, err := dir.Get(ctx, "f2")
	require.NoError(t, err)
	assert.Equal(t, "Arena Senayan", f2.VenueName)
}
