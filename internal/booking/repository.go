package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arenakita/arenakita-backend/internal/db"
)

// slotConstraint is the partial unique index allowing one confirmed booking per field and start time.
const slotConstraint = "bookings_field_slot_confirmed_key"

//go:generate mockgen -source=repository.go -destination=mocks/repository.go -package=mocks

// Repository is the booking store.
type Repository interface {
	// CreateIfAvailable inserts b unless a confirmed booking already holds the
	// same field and start time, in which case it returns ErrConflict.
	CreateIfAvailable(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	// ListConfirmedInRange returns confirmed bookings of a field starting in [from, to), by start time.
	ListConfirmedInRange(ctx context.Context, fieldID string, from, to time.Time) ([]*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	// MarkPaid moves confirmed(pending) to confirmed(paid).
	MarkPaid(ctx context.Context, id string) (*Booking, error)
	// Cancel moves confirmed(*) to cancelled.
	Cancel(ctx context.Context, id string) (*Booking, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
	psql squirrel.StatementBuilderType
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{
		pool: pool,
		psql: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var bookingColumns = []string{
	"b.id", "b.field_id", "f.name", "f.venue_id", "v.name", "b.user_id", "u.full_name",
	"b.start_time", "b.end_time", "b.total_price", "b.payment_status", "b.booking_status",
	"b.created_at", "b.updated_at",
}

func (r *pgxRepository) selectBookings(columns ...string) squirrel.SelectBuilder {
	return r.psql.Select(columns...).
		From("public.bookings b").
		Join("public.fields f ON b.field_id = f.id").
		Join("public.venues v ON f.venue_id = v.id").
		Join("public.users u ON b.user_id = u.id")
}

func scanBooking(row pgx.Row, extra ...any) (*Booking, error) {
	var b Booking
	var payment, status string
	dest := append([]any{
		&b.ID, &b.FieldID, &b.FieldName, &b.VenueID, &b.VenueName, &b.UserID, &b.UserName,
		&b.StartTime, &b.EndTime, &b.TotalPrice, &payment, &status,
		&b.CreatedAt, &b.UpdatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	b.PaymentStatus = PaymentStatus(payment)
	b.Status = Status(status)
	return &b, nil
}

func (r *pgxRepository) CreateIfAvailable(ctx context.Context, b *Booking) error {
	query, args, err := r.psql.Insert("public.bookings").
		Columns("field_id", "user_id", "start_time", "end_time", "total_price", "payment_status", "booking_status").
		Values(b.FieldID, b.UserID, b.StartTime, b.EndTime, b.TotalPrice, string(b.PaymentStatus), string(b.Status)).
		Suffix("ON CONFLICT (field_id, start_time) WHERE booking_status = 'confirmed' DO NOTHING").
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		// DO NOTHING yields no row when the slot is held.
		if errors.Is(err, pgx.ErrNoRows) || db.IsUniqueViolation(err, slotConstraint) {
			return ErrConflict
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query, args, err := r.selectBookings(bookingColumns...).
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) ListConfirmedInRange(ctx context.Context, fieldID string, from, to time.Time) ([]*Booking, error) {
	query, args, err := r.selectBookings(bookingColumns...).
		Where(squirrel.Eq{"b.field_id": fieldID, "b.booking_status": string(StatusConfirmed)}).
		Where(squirrel.GtOrEq{"b.start_time": from}).
		Where(squirrel.Lt{"b.start_time": to}).
		OrderBy("b.start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list day bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list day bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings failed: %w", err)
	}
	return bookings, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	query := r.selectBookings(append(bookingColumns, "count(*) OVER() AS total_count")...)

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}
	if filter.VenueID != "" {
		query = query.Where(squirrel.Eq{"f.venue_id": filter.VenueID})
	}
	if filter.FieldID != "" {
		query = query.Where(squirrel.Eq{"b.field_id": filter.FieldID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.booking_status": string(filter.Status)})
	}
	if filter.PaymentStatus != "" {
		query = query.Where(squirrel.Eq{"b.payment_status": string(filter.PaymentStatus)})
	}
	if filter.From != nil {
		query = query.Where(squirrel.GtOrEq{"b.start_time": *filter.From})
	}
	if filter.To != nil {
		query = query.Where(squirrel.Lt{"b.start_time": *filter.To})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	sql, args, err := query.
		OrderBy("b.start_time DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int
	for rows.Next() {
		b, err := scanBooking(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate bookings failed: %w", err)
	}

	return bookings, total, nil
}

func (r *pgxRepository) MarkPaid(ctx context.Context, id string) (*Booking, error) {
	return r.transition(ctx, id,
		squirrel.Eq{"booking_status": string(StatusConfirmed), "payment_status": string(PaymentPending)},
		map[string]any{"payment_status": string(PaymentPaid)},
	)
}

func (r *pgxRepository) Cancel(ctx context.Context, id string) (*Booking, error) {
	return r.transition(ctx, id,
		squirrel.Eq{"booking_status": string(StatusConfirmed)},
		map[string]any{"booking_status": string(StatusCancelled)},
	)
}

// transition applies set to the booking only while it matches from, as one
// conditional UPDATE, so concurrent transitions cannot both succeed.
func (r *pgxRepository) transition(ctx context.Context, id string, from squirrel.Eq, set map[string]any) (*Booking, error) {
	query, args, err := r.psql.Update("public.bookings").
		SetMap(set).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where(from).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build booking transition query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("booking transition failed: %w", err)
	}

	b, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ct.RowsAffected() == 0 {
		return nil, ErrInvalidTransition
	}
	return b, nil
}
