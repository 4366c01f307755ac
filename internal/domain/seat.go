package domain

import "context"

type SeatType string

const (
	SeatTypeStandard SeatType = "STANDARD"
	SeatTypeVIP      SeatType = "VIP"
)

type Seat struct {
	ID     int
	HallID int
	Row    int
	Col    int
	Type   SeatType
}

// SeatPosition addresses a seat by its coordinates inside a hall.
type SeatPosition struct {
	Row int
	Col int
}

type SeatRepository interface {
	GetByPosition(ctx context.Context, hallID, row, col int) (*Seat, error)
	// TryClaim takes the transaction-scoped claim on a (screening, seat) pair.
	// It never blocks; false means another transaction holds the claim.
	TryClaim(ctx context.Context, screeningID, seatID int) (bool, error)
	IsHeld(ctx context.Context, screeningID, seatID int) (bool, error)
}
