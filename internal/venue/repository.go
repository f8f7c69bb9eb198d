package venue

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate mockgen -source=repository.go -destination=mocks/repository.go -package=mocks

// Repository defines data access methods for venues.
type Repository interface {
	Create(ctx context.Context, v *Venue) error
	GetByID(ctx context.Context, id string) (*Venue, error)
	List(ctx context.Context, filter Filter) ([]*Venue, int, error)
	Update(ctx context.Context, v *Venue) error
	// SetStatus moves a venue out of from; it returns ErrNotPending when the
	// venue is no longer in that state.
	SetStatus(ctx context.Context, id string, from, to Status, reason *string) (*Venue, error)
	SetCoverPhoto(ctx context.Context, id string, fileID string) error
	IsManager(ctx context.Context, venueID, userID string) (bool, error)
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

var venueColumns = []string{
	"v.id", "v.manager_id", "u.full_name", "v.name", "v.city", "v.address", "v.description",
	"v.status", "v.rejection_reason", "v.cover_photo_id", "v.created_at", "v.updated_at",
}

func scanVenue(row pgx.Row, extra ...any) (*Venue, error) {
	var v Venue
	var status string
	dest := append([]any{
		&v.ID, &v.ManagerID, &v.ManagerName, &v.Name, &v.City, &v.Address, &v.Description,
		&status, &v.RejectionReason, &v.CoverPhotoID, &v.CreatedAt, &v.UpdatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	v.Status = Status(status)
	return &v, nil
}

func (r *pgxRepository) Create(ctx context.Context, v *Venue) error {
	query, args, err := r.psql.Insert("public.venues").
		Columns("manager_id", "name", "city", "address", "description", "status").
		Values(v.ManagerID, v.Name, v.City, v.Address, v.Description, string(v.Status)).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create venue query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return fmt.Errorf("create venue failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Venue, error) {
	query, args, err := r.psql.Select(venueColumns...).
		From("public.venues v").
		Join("public.users u ON v.manager_id = u.id").
		Where(squirrel.Eq{"v.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get venue query failed: %w", err)
	}

	v, err := scanVenue(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get venue failed: %w", err)
	}
	return v, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Venue, int, error) {
	query := r.psql.Select(append(venueColumns, "count(*) OVER() AS total_count")...).
		From("public.venues v").
		Join("public.users u ON v.manager_id = u.id")

	if filter.ManagerID != "" {
		query = query.Where(squirrel.Eq{"v.manager_id": filter.ManagerID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"v.status": string(filter.Status)})
	}
	if filter.City != "" {
		query = query.Where(squirrel.ILike{"v.city": filter.City})
	}
	if filter.Query != "" {
		query = query.Where(squirrel.ILike{"v.name": "%" + filter.Query + "%"})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	sql, args, err := query.
		OrderBy("v.created_at DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list venues query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list venues failed: %w", err)
	}
	defer rows.Close()

	var venues []*Venue
	var total int
	for rows.Next() {
		v, err := scanVenue(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan venue failed: %w", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate venues failed: %w", err)
	}

	return venues, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, v *Venue) error {
	query, args, err := r.psql.Update("public.venues").
		Set("name", v.Name).
		Set("city", v.City).
		Set("address", v.Address).
		Set("description", v.Description).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": v.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build update venue query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&v.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update venue failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) SetStatus(ctx context.Context, id string, from, to Status, reason *string) (*Venue, error) {
	query, args, err := r.psql.Update("public.venues").
		Set("status", string(to)).
		Set("rejection_reason", reason).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "status": string(from)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build set venue status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("set venue status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		// Distinguish a missing venue from one already reviewed.
		if _, err := r.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrNotPending
	}
	return r.GetByID(ctx, id)
}

func (r *pgxRepository) SetCoverPhoto(ctx context.Context, id string, fileID string) error {
	query, args, err := r.psql.Update("public.venues").
		Set("cover_photo_id", fileID).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set cover photo query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("set cover photo failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) IsManager(ctx context.Context, venueID, userID string) (bool, error) {
	query, args, err := r.psql.Select("1").
		Prefix("SELECT EXISTS (").
		From("public.venues").
		Where(squirrel.Eq{"id": venueID, "manager_id": userID}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build is manager query failed: %w", err)
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check venue manager failed: %w", err)
	}
	return exists, nil
}
