package booking

import (
	"fmt"
	"time"
)

// SlotDuration is the length of every bookable slot.
const SlotDuration = time.Hour

const dateLayout = "2006-01-02"

// OperatingHours is the inclusive range of bookable start hours.
// {Open: 8, Close: 22} offers slots 08:00 through 22:00.
type OperatingHours struct {
	Open  int
	Close int
}

// Validate rejects ranges outside 0..23 and inverted ranges.
func (h OperatingHours) Validate() error {
	if h.Open < 0 || h.Open > 23 || h.Close < 0 || h.Close > 23 {
		return fmt.Errorf("operating hours %d..%d outside 0..23", h.Open, h.Close)
	}
	if h.Open > h.Close {
		return fmt.Errorf("operating hours %d..%d: open after close", h.Open, h.Close)
	}
	return nil
}

// Contains reports whether hour is a bookable start hour.
func (h OperatingHours) Contains(hour int) bool {
	return hour >= h.Open && hour <= h.Close
}

// SlotStatus is the availability of one slot.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
)

// Slot is one hour of a field's day. Slots are derived and never stored.
type Slot struct {
	Hour   int
	Start  time.Time
	End    time.Time
	Status SlotStatus
}

// ParseDate parses a YYYY-MM-DD calendar day in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// FormatDate renders the calendar day of t.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// SlotStart returns the start of the slot at hour on the calendar day of date, in loc.
func SlotStart(date time.Time, hour int, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, hour, 0, 0, 0, loc)
}

// DayBounds returns [start, end) of the calendar day of date in loc.
func DayBounds(date time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// BuildSlots lays out one slot per operating hour of date, marking an hour booked
// when a confirmed booking starts in it. Bookings on other days, outside the
// operating range, or cancelled are ignored. Result is ordered by hour.
func BuildSlots(hours OperatingHours, date time.Time, loc *time.Location, bookings []*Booking) []Slot {
	if hours.Validate() != nil {
		return nil
	}

	y, m, d := date.Date()
	booked := make(map[int]bool, len(bookings))
	for _, b := range bookings {
		if b == nil || b.Status != StatusConfirmed {
			continue
		}
		st := b.StartTime.In(loc)
		by, bm, bd := st.Date()
		if by != y || bm != m || bd != d {
			continue
		}
		if hours.Contains(st.Hour()) {
			booked[st.Hour()] = true
		}
	}

	slots := make([]Slot, 0, hours.Close-hours.Open+1)
	for hour := hours.Open; hour <= hours.Close; hour++ {
		start := SlotStart(date, hour, loc)
		status := SlotAvailable
		if booked[hour] {
			status = SlotBooked
		}
		slots = append(slots, Slot{
			Hour:   hour,
			Start:  start,
			End:    start.Add(SlotDuration),
			Status: status,
		})
	}
	return slots
}
