package booking

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/arenakita/arenakita-backend/internal/auth"
	"github.com/arenakita/arenakita-backend/internal/db"
	"github.com/arenakita/arenakita-backend/internal/field"
	"github.com/arenakita/arenakita-backend/internal/notify"
	"github.com/arenakita/arenakita-backend/internal/pkg/apperror"
	"github.com/arenakita/arenakita-backend/internal/venue"
)

// Event routing keys.
const (
	EventCreated   = "booking.created"
	EventPaid      = "booking.paid"
	EventCancelled = "booking.cancelled"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// FieldLookup resolves field metadata by id.
type FieldLookup interface {
	Get(ctx context.Context, id string) (*field.Field, error)
}

// VenueAccess answers venue ownership questions.
type VenueAccess interface {
	IsManager(ctx context.Context, venueID, userID string) (bool, error)
	// CheckManage returns venue.ErrNotFound for an unknown venue and
	// venue.ErrPermissionDenied when p may not manage it.
	CheckManage(ctx context.Context, p auth.Principal, venueID string) error
}

// Service is the booking ledger.
type Service interface {
	// ListBookings returns the confirmed bookings of a field on the calendar
	// day of date whose start hour lies in the field's operating hours.
	ListBookings(ctx context.Context, fieldID string, date time.Time) ([]*Booking, error)
	Availability(ctx context.Context, fieldID string, date time.Time) (*DayAvailability, error)
	CreateBooking(ctx context.Context, p auth.Principal, req CreateRequest) (*Booking, error)
	GetBooking(ctx context.Context, p auth.Principal, id string) (*Booking, error)
	ListMyBookings(ctx context.Context, p auth.Principal, filter Filter) ([]*Booking, int, error)
	ListVenueBookings(ctx context.Context, p auth.Principal, venueID string, filter Filter) ([]*Booking, int, error)
	// MarkPaid is called by the payment collaborator.
	MarkPaid(ctx context.Context, id string) (*Booking, error)
	CancelBooking(ctx context.Context, p auth.Principal, id string) (*Booking, error)
}

type service struct {
	repo      Repository
	fields    FieldLookup
	venues    VenueAccess
	publisher notify.Publisher
	logger    *slog.Logger
	loc       *time.Location
	now       func() time.Time
	tracer    trace.Tracer
}

// Option customises the ledger.
type Option func(*service)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// NewService creates the ledger. Slot times are interpreted in loc.
func NewService(
	repo Repository,
	fields FieldLookup,
	venues VenueAccess,
	publisher notify.Publisher,
	logger *slog.Logger,
	loc *time.Location,
	opts ...Option,
) Service {
	s := &service{
		repo:      repo,
		fields:    fields,
		venues:    venues,
		publisher: publisher,
		logger:    logger.With("component", "booking"),
		loc:       loc,
		now:       time.Now,
		tracer:    otel.Tracer("github.com/arenakita/arenakita-backend/internal/booking"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// storeErr maps transient store failures to ErrStoreUnavailable and passes domain errors through.
func storeErr(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if db.IsTransient(err) {
		return apperror.WithCause(ErrStoreUnavailable, err)
	}
	return err
}

func endSpan(span trace.Span, err error) {
	if err != nil && apperror.StatusCode(err) >= 500 {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// bookableField returns the field if it exists and its venue is open for booking.
func (s *service) bookableField(ctx context.Context, fieldID string) (*field.Field, error) {
	f, err := s.fields.Get(ctx, fieldID)
	if err != nil {
		if errors.Is(err, field.ErrNotFound) {
			return nil, ErrFieldNotFound
		}
		return nil, storeErr(err)
	}
	if f.VenueStatus != string(venue.StatusApproved) {
		return nil, ErrFieldNotFound
	}
	return f, nil
}

func hoursOf(f *field.Field) OperatingHours {
	return OperatingHours{Open: f.OpenHour, Close: f.CloseHour}
}

func (s *service) ListBookings(ctx context.Context, fieldID string, date time.Time) (_ []*Booking, err error) {
	ctx, span := s.tracer.Start(ctx, "booking.ListBookings", trace.WithAttributes(
		attribute.String("field.id", fieldID),
		attribute.String("date", FormatDate(date)),
	))
	defer func() { endSpan(span, err) }()

	f, err := s.bookableField(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	return s.dayBookings(ctx, f, date)
}

func (s *service) dayBookings(ctx context.Context, f *field.Field, date time.Time) ([]*Booking, error) {
	from, to := DayBounds(date, s.loc)
	all, err := s.repo.ListConfirmedInRange(ctx, f.ID, from, to)
	if err != nil {
		return nil, storeErr(err)
	}

	hours := hoursOf(f)
	out := make([]*Booking, 0, len(all))
	for _, b := range all {
		if b.Status != StatusConfirmed {
			continue
		}
		if hours.Contains(b.StartTime.In(s.loc).Hour()) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *service) Availability(ctx context.Context, fieldID string, date time.Time) (_ *DayAvailability, err error) {
	ctx, span := s.tracer.Start(ctx, "booking.Availability", trace.WithAttributes(
		attribute.String("field.id", fieldID),
		attribute.String("date", FormatDate(date)),
	))
	defer func() { endSpan(span, err) }()

	f, err := s.bookableField(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.dayBookings(ctx, f, date)
	if err != nil {
		return nil, err
	}

	hours := hoursOf(f)
	day, _ := DayBounds(date, s.loc)
	return &DayAvailability{
		FieldID:      f.ID,
		Date:         day,
		Hours:        hours,
		PricePerHour: f.PricePerHour,
		Slots:        BuildSlots(hours, day, s.loc, bookings),
	}, nil
}

func (s *service) CreateBooking(ctx context.Context, p auth.Principal, req CreateRequest) (_ *Booking, err error) {
	ctx, span := s.tracer.Start(ctx, "booking.CreateBooking", trace.WithAttributes(
		attribute.String("field.id", req.FieldID),
		attribute.String("date", FormatDate(req.Date)),
		attribute.Int("hour", req.Hour),
	))
	defer func() { endSpan(span, err) }()

	if !p.Authenticated() {
		return nil, ErrUnauthenticated
	}

	f, err := s.bookableField(ctx, req.FieldID)
	if err != nil {
		return nil, err
	}

	if !hoursOf(f).Contains(req.Hour) {
		return nil, ErrInvalidHour
	}

	start := SlotStart(req.Date, req.Hour, s.loc)
	if !start.After(s.now()) {
		return nil, ErrSlotInPast
	}

	b := &Booking{
		FieldID:       f.ID,
		FieldName:     f.Name,
		VenueID:       f.VenueID,
		VenueName:     f.VenueName,
		UserID:        p.UserID,
		StartTime:     start,
		EndTime:       start.Add(SlotDuration),
		TotalPrice:    f.PricePerHour,
		PaymentStatus: PaymentPending,
		Status:        StatusConfirmed,
	}

	if err := s.repo.CreateIfAvailable(ctx, b); err != nil {
		if errors.Is(err, ErrConflict) {
			s.logger.InfoContext(ctx, "slot already taken",
				"field_id", f.ID, "start", start, "user_id", p.UserID)
		}
		return nil, storeErr(err)
	}

	span.SetAttributes(attribute.String("booking.id", b.ID))
	s.logger.InfoContext(ctx, "booking created",
		"booking_id", b.ID, "field_id", b.FieldID, "start", b.StartTime, "user_id", b.UserID)
	s.publish(ctx, EventCreated, b)

	return b, nil
}

// canView reports whether p is the booker, the venue's manager or a superadmin.
func (s *service) canView(ctx context.Context, p auth.Principal, b *Booking) (bool, error) {
	if !p.Authenticated() {
		return false, nil
	}
	if p.IsSuperadmin() || b.UserID == p.UserID {
		return true, nil
	}
	if p.Role != auth.RoleManager {
		return false, nil
	}
	ok, err := s.venues.IsManager(ctx, b.VenueID, p.UserID)
	if err != nil {
		return false, storeErr(err)
	}
	return ok, nil
}

func (s *service) GetBooking(ctx context.Context, p auth.Principal, id string) (*Booking, error) {
	if !p.Authenticated() {
		return nil, ErrUnauthenticated
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}

	ok, err := s.canView(ctx, p, b)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrPermissionDenied
	}
	return b, nil
}

func (s *service) ListMyBookings(ctx context.Context, p auth.Principal, filter Filter) ([]*Booking, int, error) {
	if !p.Authenticated() {
		return nil, 0, ErrUnauthenticated
	}

	filter.UserID = p.UserID
	filter.VenueID = ""
	bookings, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, storeErr(err)
	}
	return bookings, total, nil
}

func (s *service) ListVenueBookings(ctx context.Context, p auth.Principal, venueID string, filter Filter) ([]*Booking, int, error) {
	if !p.Authenticated() {
		return nil, 0, ErrUnauthenticated
	}

	if p.Role != auth.RoleManager && !p.IsSuperadmin() {
		return nil, 0, ErrPermissionDenied
	}
	if err := s.venues.CheckManage(ctx, p, venueID); err != nil {
		if errors.Is(err, venue.ErrPermissionDenied) {
			return nil, 0, ErrPermissionDenied
		}
		return nil, 0, storeErr(err)
	}

	filter.VenueID = venueID
	filter.UserID = ""
	bookings, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, storeErr(err)
	}
	return bookings, total, nil
}

func (s *service) MarkPaid(ctx context.Context, id string) (_ *Booking, err error) {
	ctx, span := s.tracer.Start(ctx, "booking.MarkPaid", trace.WithAttributes(attribute.String("booking.id", id)))
	defer func() { endSpan(span, err) }()

	b, err := s.repo.MarkPaid(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}

	s.logger.InfoContext(ctx, "booking paid", "booking_id", b.ID)
	s.publish(ctx, EventPaid, b)
	return b, nil
}

func (s *service) CancelBooking(ctx context.Context, p auth.Principal, id string) (_ *Booking, err error) {
	ctx, span := s.tracer.Start(ctx, "booking.CancelBooking", trace.WithAttributes(attribute.String("booking.id", id)))
	defer func() { endSpan(span, err) }()

	current, err := s.GetBooking(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if current.Status != StatusConfirmed {
		return nil, ErrInvalidTransition
	}

	b, err := s.repo.Cancel(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}

	s.logger.InfoContext(ctx, "booking cancelled", "booking_id", b.ID, "by", p.UserID)
	s.publish(ctx, EventCancelled, b)
	return b, nil
}

// EventPayload is the message body of booking events.
type EventPayload struct {
	BookingID     string    `json:"booking_id"`
	FieldID       string    `json:"field_id"`
	VenueID       string    `json:"venue_id"`
	UserID        string    `json:"user_id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	TotalPrice    int64     `json:"total_price"`
	PaymentStatus string    `json:"payment_status"`
	BookingStatus string    `json:"booking_status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// publish is best effort: the booking is already durable, so a broker failure is only logged.
func (s *service) publish(ctx context.Context, key string, b *Booking) {
	payload := EventPayload{
		BookingID:     b.ID,
		FieldID:       b.FieldID,
		VenueID:       b.VenueID,
		UserID:        b.UserID,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		TotalPrice:    b.TotalPrice,
		PaymentStatus: string(b.PaymentStatus),
		BookingStatus: string(b.Status),
		OccurredAt:    s.now().UTC(),
	}
	if err := s.publisher.PublishJSON(ctx, key, payload); err != nil {
		s.logger.WarnContext(ctx, "publish booking event failed", "event", key, "booking_id", b.ID, "err", err)
	}
}
