package repository

import (
	"context"

	"github.com/metinatakli/cinego/internal/domain"
)

type PostgresSeatRepository struct {
	db DBTX
}

func NewPostgresSeatRepository(db DBTX) *PostgresSeatRepository {
	return &PostgresSeatRepository{
		db: db,
	}
}

func (p *PostgresSeatRepository) GetByPosition(ctx context.Context, hallID, row, col int) (*domain.Seat, error) {
	query := `
		SELECT id, hall_id, row_num, col_num, seat_type
		FROM seats
		WHERE hall_id = $1 AND row_num = $2 AND col_num = $3
	`

	var seat domain.Seat

	err := p.db.QueryRow(ctx, query, hallID, row, col).Scan(
		&seat.ID,
		&seat.HallID,
		&seat.Row,
		&seat.Col,
		&seat.Type,
	)
	if err != nil {
		return nil, translateError(err)
	}

	return &seat, nil
}

// TryClaim takes a transaction-scoped advisory lock keyed by the pair. The
// lock is released on commit or rollback, which is exactly when a new booking
// becomes visible to other transactions.
func (p *PostgresSeatRepository) TryClaim(ctx context.Context, screeningID, seatID int) (bool, error) {
	var claimed bool

	err := p.db.QueryRow(ctx, `SELECT pg_try_advisory_xact_lock($1::int, $2::int)`, screeningID, seatID).Scan(&claimed)
	if err != nil {
		return false, translateError(err)
	}

	return claimed, nil
}

func (p *PostgresSeatRepository) IsHeld(ctx context.Context, screeningID, seatID int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM booking_items bi
			JOIN bookings b
				ON b.id = bi.booking_id
			WHERE b.screening_id = $1
				AND bi.seat_id = $2
				AND b.status IN ('CREATED', 'PAID')
		)
	`

	var held bool

	err := p.db.QueryRow(ctx, query, screeningID, seatID).Scan(&held)
	if err != nil {
		return false, translateError(err)
	}

	return held, nil
}
