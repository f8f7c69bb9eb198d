package booking_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenakita/arenakita-backend/internal/booking"
	"github.com/arenakita/arenakita-backend/internal/db"
	"github.com/arenakita/arenakita-backend/internal/db/migrations"
)

// newTestPool connects to TEST_DB_DSN, skipping the test when it is unset.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, db.Migrate(ctx, pool, migrations.FS))
	return pool
}

type seed struct {
	userIDs []string
	fieldID string
}

func seedField(t *testing.T, pool *pgxpool.Pool, players int) seed {
	t.Helper()
	ctx := context.Background()
	suffix := uuid.NewString()

	var managerID string
	err := pool.QueryRow(ctx,
		`INSERT INTO public.users (email, password_hash, full_name, role)
		 VALUES ($1, 'x', 'Manager', 'manager') RETURNING id`,
		"manager-"+suffix+"@example.com",
	).Scan(&managerID)
	require.NoError(t, err)

	var venueID string
	err = pool.QueryRow(ctx,
		`INSERT INTO public.venues (manager_id, name, city, status)
		 VALUES ($1, 'Arena Test', 'Jakarta', 'approved') RETURNING id`,
		managerID,
	).Scan(&venueID)
	require.NoError(t, err)

	s := seed{}
	err = pool.QueryRow(ctx,
		`INSERT INTO public.fields (venue_id, name, price_per_hour) VALUES ($1, 'Lapangan A', 100000) RETURNING id`,
		venueID,
	).Scan(&s.fieldID)
	require.NoError(t, err)

	for i := 0; i < players; i++ {
		var id string
		err := pool.QueryRow(ctx,
			`INSERT INTO public.users (email, password_hash, full_name) VALUES ($1, 'x', 'Player') RETURNING id`,
			uuid.NewString()+"@example.com",
		).Scan(&id)
		require.NoError(t, err)
		s.userIDs = append(s.userIDs, id)
	}

	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM public.venues WHERE id = $1`, venueID)
	})
	return s
}

func slotBooking(fieldID, userID string, start time.Time) *booking.Booking {
	return &booking.Booking{
		FieldID:       fieldID,
		UserID:        userID,
		StartTime:     start,
		EndTime:       start.Add(booking.SlotDuration),
		TotalPrice:    100000,
		PaymentStatus: booking.PaymentPending,
		Status:        booking.StatusConfirmed,
	}
}

func TestCreateIfAvailableConcurrent(t *testing.T) {
	pool := newTestPool(t)
	const players = 16
	s := seedField(t, pool, players)
	repo := booking.NewPgxRepository(pool)
	ctx := context.Background()

	start := time.Date(2030, 1, 2, 3, 0, 0, 0, time.UTC)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		won       int
		conflicts int
		other     []error
	)
	for _, userID := range s.userIDs {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()
			err := repo.CreateIfAvailable(ctx, slotBooking(s.fieldID, userID, start))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				won++
			case errors.Is(err, booking.ErrConflict):
				conflicts++
			default:
				other = append(other, err)
			}
		}(userID)
	}
	wg.Wait()

	assert.Empty(t, other)
	assert.Equal(t, 1, won)
	assert.Equal(t, players-1, conflicts)

	day, err := repo.ListConfirmedInRange(ctx, s.fieldID, start.Add(-time.Hour), start.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, day, 1)
	assert.True(t, start.Equal(day[0].StartTime))
}

func TestCancelFreesSlot(t *testing.T) {
	pool := newTestPool(t)
	s := seedField(t, pool, 2)
	repo := booking.NewPgxRepository(pool)
	ctx := context.Background()

	start := time.Date(2030, 1, 2, 4, 0, 0, 0, time.UTC)

	first := slotBooking(s.fieldID, s.userIDs[0], start)
	require.NoError(t, repo.CreateIfAvailable(ctx, first))
	require.NotEmpty(t, first.ID)

	err := repo.CreateIfAvailable(ctx, slotBooking(s.fieldID, s.userIDs[0], start))
	assert.ErrorIs(t, err, booking.ErrConflict, "retrying the same slot must not create a second booking")

	cancelled, err := repo.Cancel(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCancelled, cancelled.Status)

	_, err = repo.Cancel(ctx, first.ID)
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)

	second := slotBooking(s.fieldID, s.userIDs[1], start)
	require.NoError(t, repo.CreateIfAvailable(ctx, second))

	paid, err := repo.MarkPaid(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.PaymentPaid, paid.PaymentStatus)

	_, err = repo.MarkPaid(ctx, second.ID)
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)

	mine, total, err := repo.List(ctx, booking.Filter{UserID: s.userIDs[1]})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, mine, 1)
	assert.Equal(t, second.ID, mine[0].ID)

	_, err = repo.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, booking.ErrNotFound)
}
