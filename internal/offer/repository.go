package offer

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, o *Offer) error
	GetByID(ctx context.Context, id string) (*Offer, error)
	List(ctx context.Context, filter Filter) ([]*Offer, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, o *Offer) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.offers").
		Columns("owner_id", "title", "description", "price_per_day_cents",
			"street", "house_number", "postcode", "city").
		Values(o.OwnerID, o.Title, o.Description, o.PricePerDayCents,
			o.Street, o.HouseNumber, o.Postcode, o.City).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create offer query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&o.ID, &o.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Offer, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"o.id", "o.owner_id", "COALESCE(u.display_name, '')",
		"o.title", "o.description", "o.price_per_day_cents",
		"o.street", "o.house_number", "o.postcode", "o.city", "o.created_at",
	).
		From("public.offers o").
		Join("public.users u ON o.owner_id = u.id").
		Where(squirrel.Eq{"o.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get offer query failed: %w", err)
	}

	var o Offer
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&o.ID, &o.OwnerID, &o.OwnerName,
		&o.Title, &o.Description, &o.PricePerDayCents,
		&o.Street, &o.HouseNumber, &o.Postcode, &o.City, &o.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get offer failed: %w", err)
	}
	return &o, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Offer, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"o.id", "o.owner_id", "COALESCE(u.display_name, '')",
		"o.title", "o.description", "o.price_per_day_cents",
		"o.street", "o.house_number", "o.postcode", "o.city", "o.created_at",
		"count(*) OVER() AS total_count",
	).
		From("public.offers o").
		Join("public.users u ON o.owner_id = u.id")

	if filter.OwnerID != "" {
		query = query.Where(squirrel.Eq{"o.owner_id": filter.OwnerID})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 12
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.OrderBy("o.created_at DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list offers query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list offers failed: %w", err)
	}
	defer rows.Close()

	var offers []*Offer
	var total int

	for rows.Next() {
		var o Offer
		if err := rows.Scan(
			&o.ID, &o.OwnerID, &o.OwnerName,
			&o.Title, &o.Description, &o.PricePerDayCents,
			&o.Street, &o.HouseNumber, &o.Postcode, &o.City, &o.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan offer failed: %w", err)
		}
		offers = append(offers, &o)
	}

	return offers, total, rows.Err()
}
