package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jakarta(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	return loc
}

func TestOperatingHours(t *testing.T) {
	tests := []struct {
		name    string
		hours   OperatingHours
		wantErr bool
	}{
		{"default", OperatingHours{8, 22}, false},
		{"single slot", OperatingHours{10, 10}, false},
		{"whole day", OperatingHours{0, 23}, false},
		{"inverted", OperatingHours{22, 8}, true},
		{"negative", OperatingHours{-1, 8}, true},
		{"past midnight", OperatingHours{8, 24}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.hours.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	h := OperatingHours{8, 22}
	assert.False(t, h.Contains(7))
	assert.True(t, h.Contains(8))
	assert.True(t, h.Contains(22))
	assert.False(t, h.Contains(23))
}

func TestParseDate(t *testing.T) {
	loc := jakarta(t)

	d, err := ParseDate("2025-03-14", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, loc), d)
	assert.Equal(t, "2025-03-14", FormatDate(d))

	for _, bad := range []string{"", "14-03-2025", "2025-02-30", "2025-03-14T10:00:00Z"} {
		_, err := ParseDate(bad, loc)
		assert.ErrorIs(t, err, ErrInvalidDate, bad)
	}
}

func TestDayBounds(t *testing.T) {
	loc := jakarta(t)
	date := time.Date(2025, 3, 14, 17, 30, 0, 0, loc)

	from, to := DayBounds(date, loc)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, loc), from)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, loc), to)
}

func TestBuildSlots(t *testing.T) {
	loc := jakarta(t)
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, loc)
	hours := OperatingHours{Open: 8, Close: 22}

	at := func(day, hour int, status Status) *Booking {
		start := time.Date(2025, 3, day, hour, 0, 0, 0, loc)
		return &Booking{StartTime: start, EndTime: start.Add(SlotDuration), Status: status}
	}

	t.Run("marks confirmed hours booked", func(t *testing.T) {
		slots := BuildSlots(hours, date, loc, []*Booking{
			at(14, 10, StatusConfirmed),
			at(14, 11, StatusConfirmed),
		})

		require.Len(t, slots, 15)
		assert.Equal(t, 8, slots[0].Hour)
		assert.Equal(t, 22, slots[len(slots)-1].Hour)

		status := make(map[int]SlotStatus, len(slots))
		for _, s := range slots {
			status[s.Hour] = s.Status
			assert.Equal(t, SlotDuration, s.End.Sub(s.Start))
		}
		assert.Equal(t, SlotBooked, status[10])
		assert.Equal(t, SlotBooked, status[11])
		assert.Equal(t, SlotAvailable, status[12])
		assert.Equal(t, SlotAvailable, status[9])
	})

	t.Run("ignores other days, cancelled and out of range bookings", func(t *testing.T) {
		slots := BuildSlots(hours, date, loc, []*Booking{
			at(15, 10, StatusConfirmed),
			at(14, 12, StatusCancelled),
			at(14, 6, StatusConfirmed),
			nil,
		})

		require.Len(t, slots, 15)
		for _, s := range slots {
			assert.Equal(t, SlotAvailable, s.Status, "hour %d", s.Hour)
		}
	})

	t.Run("interprets stored UTC times in the calendar zone", func(t *testing.T) {
		// 03:00 UTC is 10:00 in Jakarta.
		b := &Booking{
			StartTime: time.Date(2025, 3, 14, 3, 0, 0, 0, time.UTC),
			Status:    StatusConfirmed,
		}
		slots := BuildSlots(hours, date, loc, []*Booking{b})
		assert.Equal(t, SlotBooked, slots[10-hours.Open].Status)
		assert.Equal(t, time.Date(2025, 3, 14, 10, 0, 0, 0, loc), slots[10-hours.Open].Start)
	})

	t.Run("invalid hours yield no slots", func(t *testing.T) {
		assert.Nil(t, BuildSlots(OperatingHours{Open: 20, Close: 10}, date, loc, nil))
	})
}
