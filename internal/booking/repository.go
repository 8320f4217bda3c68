package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)

	// UpdateState persists the booking's current state.
	UpdateState(ctx context.Context, b *Booking) error

	// FindApprovedOverlapping returns the APPROVED bookings of an offer whose
	// interval overlaps the given one, ordered by start date ascending.
	FindApprovedOverlapping(ctx context.Context, offerID string, iv Interval) ([]*Booking, error)

	FindByOfferAndState(ctx context.Context, offerID string, state State) ([]*Booking, error)

	// ListByOffer returns every booking of an offer, newest first.
	ListByOffer(ctx context.Context, offerID string) ([]*Booking, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const bookingColumns = "b.id, b.offer_id, o.owner_id, b.requester_id, b.from_date, b.to_date, b.state, b.created_at, b.updated_at"

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("offer_id", "requester_id", "from_date", "to_date", "state").
		Values(b.OfferID, b.RequesterID, b.Interval.From, b.Interval.To, b.State).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return mapPgError(err, "create booking failed")
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns).
		From("public.bookings b").
		Join("public.offers o ON b.offer_id = o.id").
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

func (r *pgxRepository) UpdateState(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("state", b.State).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return mapPgError(err, "update booking failed")
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) FindApprovedOverlapping(ctx context.Context, offerID string, iv Interval) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns).
		From("public.bookings b").
		Join("public.offers o ON b.offer_id = o.id").
		Where(squirrel.Eq{"b.offer_id": offerID}).
		Where(squirrel.Eq{"b.state": StateApproved}).
		Where(squirrel.LtOrEq{"b.from_date": iv.To}).
		Where(squirrel.GtOrEq{"b.to_date": iv.From}).
		OrderBy("b.from_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find approved overlapping query failed: %w", err)
	}

	return r.queryBookings(ctx, query, args)
}

func (r *pgxRepository) FindByOfferAndState(ctx context.Context, offerID string, state State) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns).
		From("public.bookings b").
		Join("public.offers o ON b.offer_id = o.id").
		Where(squirrel.Eq{"b.offer_id": offerID}).
		Where(squirrel.Eq{"b.state": state}).
		OrderBy("b.from_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find by offer and state query failed: %w", err)
	}

	return r.queryBookings(ctx, query, args)
}

func (r *pgxRepository) ListByOffer(ctx context.Context, offerID string) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns).
		From("public.bookings b").
		Join("public.offers o ON b.offer_id = o.id").
		Where(squirrel.Eq{"b.offer_id": offerID}).
		OrderBy("b.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	return r.queryBookings(ctx, query, args)
}

func (r *pgxRepository) queryBookings(ctx context.Context, query string, args []any) ([]*Booking, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bookings failed: %w", err)
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
	return bookings, rows.Err()
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	if err := row.Scan(
		&b.ID, &b.OfferID, &b.OwnerID, &b.RequesterID,
		&b.Interval.From, &b.Interval.To, &b.State,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

// mapPgError translates the approved-overlap exclusion constraint into
// ErrBookingConflict. The constraint is the transactional backstop for the
// in-process conflict check under concurrent requests.
func mapPgError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
		return ErrBookingConflict
	}
	return fmt.Errorf("%s: %w", msg, err)
}
