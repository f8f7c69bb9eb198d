package field

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate mockgen -source=repository.go -destination=mocks/repository.go -package=mocks

type Repository interface {
	Create(ctx context.Context, f *Field) error
	GetByID(ctx context.Context, id string) (*Field, error)
	List(ctx context.Context, filter Filter) ([]*Field, int, error)
	Update(ctx context.Context, f *Field) error
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

var fieldColumns = []string{
	"f.id", "f.venue_id", "v.name", "v.status", "v.manager_id",
	"f.name", "f.price_per_hour", "f.open_hour", "f.close_hour", "f.created_at",
}

func scanField(row pgx.Row, extra ...any) (*Field, error) {
	var f Field
	var open, close int16
	dest := append([]any{
		&f.ID, &f.VenueID, &f.VenueName, &f.VenueStatus, &f.ManagerID,
		&f.Name, &f.PricePerHour, &open, &close, &f.CreatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	f.OpenHour, f.CloseHour = int(open), int(close)
	return &f, nil
}

func (r *pgxRepository) Create(ctx context.Context, f *Field) error {
	query, args, err := r.psql.Insert("public.fields").
		Columns("venue_id", "name", "price_per_hour", "open_hour", "close_hour").
		Values(f.VenueID, f.Name, f.PricePerHour, f.OpenHour, f.CloseHour).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create field query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&f.ID, &f.CreatedAt); err != nil {
		return fmt.Errorf("create field failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Field, error) {
	query, args, err := r.psql.Select(fieldColumns...).
		From("public.fields f").
		Join("public.venues v ON f.venue_id = v.id").
		Where(squirrel.Eq{"f.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get field query failed: %w", err)
	}

	f, err := scanField(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get field failed: %w", err)
	}
	return f, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Field, int, error) {
	query := r.psql.Select(append(fieldColumns, "count(*) OVER() AS total_count")...).
		From("public.fields f").
		Join("public.venues v ON f.venue_id = v.id")

	if filter.VenueID != "" {
		query = query.Where(squirrel.Eq{"f.venue_id": filter.VenueID})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	sql, args, err := query.
		OrderBy("f.name ASC", "f.created_at ASC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list fields query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list fields failed: %w", err)
	}
	defer rows.Close()

	var fields []*Field
	var total int
	for rows.Next() {
		f, err := scanField(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan field failed: %w", err)
		}
		fields = append(fields, f)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate fields failed: %w", err)
	}

	return fields, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, f *Field) error {
	query, args, err := r.psql.Update("public.fields").
		Set("name", f.Name).
		Set("price_per_hour", f.PricePerHour).
		Set("open_hour", f.OpenHour).
		Set("close_hour", f.CloseHour).
		Where(squirrel.Eq{"id": f.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update field query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update field failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
