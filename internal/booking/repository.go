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
	// CreateIfAvailable inserts the booking inside a transaction that locks
	// the room row, so two concurrent creates for the same room serialize.
	// The room must have status "available" and no confirmed booking
	// overlapping [CheckIn, CheckOut).
	CreateIfAvailable(ctx context.Context, b *Booking) error

	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Update(ctx context.Context, b *Booking) error

	// ListByStatuses returns every booking in one of the given statuses,
	// unpaginated. Used by availability and statistics.
	ListByStatuses(ctx context.Context, statuses ...Status) ([]*Booking, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) CreateIfAvailable(ctx context.Context, b *Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create booking tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the room row so concurrent creates for the same room serialize
	// behind this transaction.
	var roomStatus string
	err = tx.QueryRow(ctx,
		`SELECT status FROM public.rooms WHERE id = $1 FOR UPDATE`,
		b.RoomID,
	).Scan(&roomStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrRoomNotFound
		}
		return fmt.Errorf("lock room failed: %w", err)
	}
	if roomStatus != "available" {
		return ErrRoomNotAvailable
	}

	// Half-open interval overlap test against confirmed bookings only.
	// Pending bookings do not block a new reservation.
	var conflict bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM public.bookings
			WHERE room_id = $1
			  AND status = 'confirmed'
			  AND check_in < $3
			  AND check_out > $2
		)`,
		b.RoomID, b.CheckIn, b.CheckOut,
	).Scan(&conflict)
	if err != nil {
		return fmt.Errorf("check booking overlap failed: %w", err)
	}
	if conflict {
		return ErrRoomNotAvailable
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("user_id", "room_id", "check_in", "check_out", "guests", "total_price", "status", "special_requests").
		Values(b.UserID, b.RoomID, b.CheckIn, b.CheckOut, b.Guests, b.TotalPrice, b.Status, b.SpecialRequests).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create booking tx failed: %w", err)
	}
	return nil
}

const bookingSelect = `
	b.id, b.user_id, COALESCE(NULLIF(TRIM(u.first_name || ' ' || u.last_name), ''), u.email),
	b.room_id, r.number,
	b.check_in, b.check_out, b.guests, b.total_price, b.status,
	b.special_requests, b.payment_intent_id, b.created_at, b.updated_at
`

func scanBooking(row pgx.Row, b *Booking, extra ...any) error {
	dest := []any{
		&b.ID, &b.UserID, &b.UserName,
		&b.RoomID, &b.RoomNumber,
		&b.CheckIn, &b.CheckOut, &b.Guests, &b.TotalPrice, &b.Status,
		&b.SpecialRequests, &b.PaymentIntentID, &b.CreatedAt, &b.UpdatedAt,
	}
	dest = append(dest, extra...)
	return row.Scan(dest...)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query := `
		SELECT` + bookingSelect + `
		FROM public.bookings b
		JOIN public.users u ON b.user_id = u.id
		JOIN public.rooms r ON b.room_id = r.id
		WHERE b.id = $1
	`

	var b Booking
	if err := scanBooking(r.pool.QueryRow(ctx, query, id), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.user_id", "COALESCE(NULLIF(TRIM(u.first_name || ' ' || u.last_name), ''), u.email)",
		"b.room_id", "r.number",
		"b.check_in", "b.check_out", "b.guests", "b.total_price", "b.status",
		"b.special_requests", "b.payment_intent_id", "b.created_at", "b.updated_at",
		"count(*) OVER() AS total_count",
	).
		From("public.bookings b").
		Join("public.users u ON b.user_id = u.id").
		Join("public.rooms r ON b.room_id = r.id")

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}
	if filter.RoomID != "" {
		query = query.Where(squirrel.Eq{"b.room_id": filter.RoomID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	// Date range filtering (intersection logic)
	if filter.From != nil {
		query = query.Where(squirrel.Gt{"b.check_out": filter.From})
	}
	if filter.To != nil {
		query = query.Where(squirrel.Lt{"b.check_in": filter.To})
	}

	query = query.OrderBy("b.created_at DESC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
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
		var b Booking
		if err := scanBooking(rows, &b, &total); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) ListByStatuses(ctx context.Context, statuses ...Status) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select(
		"b.id", "b.user_id", "COALESCE(NULLIF(TRIM(u.first_name || ' ' || u.last_name), ''), u.email)",
		"b.room_id", "r.number",
		"b.check_in", "b.check_out", "b.guests", "b.total_price", "b.status",
		"b.special_requests", "b.payment_intent_id", "b.created_at", "b.updated_at",
	).
		From("public.bookings b").
		Join("public.users u ON b.user_id = u.id").
		Join("public.rooms r ON b.room_id = r.id").
		Where(squirrel.Eq{"b.status": statuses}).
		OrderBy("b.check_in ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings by status query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings by status failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, nil
}

func (r *pgxRepository) Update(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", b.Status).
		Set("payment_intent_id", b.PaymentIntentID).
		Set("special_requests", b.SpecialRequests).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		// The schema carries an exclusion constraint over (room_id, date
		// range) for confirmed rows, so confirming a booking that overlaps
		// an already-confirmed one is rejected here by the database.
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.ExclusionViolation {
			return ErrRoomNotAvailable
		}
		return fmt.Errorf("update booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
