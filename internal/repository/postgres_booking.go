package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/metinatakli/cinego/internal/domain"
	"github.com/shopspring/decimal"
)

const bookingColumns = `id, user_id, screening_id, status, total_price, refund_amount, created_at, paid_at, cancelled_at`

type PostgresBookingRepository struct {
	db DBTX
}

func NewPostgresBookingRepository(db DBTX) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (p *PostgresBookingRepository) Insert(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (user_id, screening_id, status, total_price, refund_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := p.db.QueryRow(
		ctx,
		query,
		booking.UserID,
		booking.ScreeningID,
		booking.Status,
		booking.TotalPrice,
		booking.RefundAmount,
		booking.CreatedAt).Scan(&booking.ID)

	return translateError(err)
}

func (p *PostgresBookingRepository) InsertItems(ctx context.Context, items ...domain.BookingItem) error {
	if len(items) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, []any{
			item.BookingID,
			item.SeatID,
			toNumeric(item.Price),
		})
	}

	_, err := p.db.CopyFrom(
		ctx,
		pgx.Identifier{"booking_items"},
		[]string{"booking_id", "seat_id", "price"},
		pgx.CopyFromRows(rows),
	)

	return translateError(err)
}

func (p *PostgresBookingRepository) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	return p.get(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
}

func (p *PostgresBookingRepository) GetByIdForUpdate(ctx context.Context, id int) (*domain.Booking, error) {
	return p.get(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id)
}

func (p *PostgresBookingRepository) get(ctx context.Context, query string, id int) (*domain.Booking, error) {
	var booking domain.Booking

	err := p.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.ScreeningID,
		&booking.Status,
		&booking.TotalPrice,
		&booking.RefundAmount,
		&booking.CreatedAt,
		&booking.PaidAt,
		&booking.CancelledAt,
	)
	if err != nil {
		return nil, translateError(err)
	}

	return &booking, nil
}

func (p *PostgresBookingRepository) GetItems(ctx context.Context, bookingID int) ([]domain.BookingItem, error) {
	query := `
		SELECT booking_id, seat_id, price
		FROM booking_items
		WHERE booking_id = $1
		ORDER BY seat_id
	`

	rows, err := p.db.Query(ctx, query, bookingID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	items := make([]domain.BookingItem, 0)

	for rows.Next() {
		var item domain.BookingItem

		err = rows.Scan(&item.BookingID, &item.SeatID, &item.Price)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (p *PostgresBookingRepository) MarkPaid(ctx context.Context, id int, paidAt time.Time) error {
	query := `UPDATE bookings SET status = $1, paid_at = $2 WHERE id = $3`

	return p.update(ctx, query, domain.BookingStatusPaid, paidAt, id)
}

func (p *PostgresBookingRepository) MarkCancelled(
	ctx context.Context,
	id int,
	refund decimal.Decimal,
	cancelledAt time.Time) error {

	query := `UPDATE bookings SET status = $1, refund_amount = $2, cancelled_at = $3 WHERE id = $4`

	return p.update(ctx, query, domain.BookingStatusCancelled, refund, cancelledAt, id)
}

func (p *PostgresBookingRepository) update(ctx context.Context, query string, args ...any) error {
	tag, err := p.db.Exec(ctx, query, args...)
	if err != nil {
		return translateError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
