package booking

import (
	"context"
	"fmt"
	"slices"

	"github.com/metinatakli/cinego/internal/domain"
)

// AvailabilityGuard decides whether seats are free for a screening. It must
// run on repositories bound to the same transaction that inserts the booking.
type AvailabilityGuard struct {
	seats domain.SeatRepository
}

func NewAvailabilityGuard(seats domain.SeatRepository) *AvailabilityGuard {
	return &AvailabilityGuard{
		seats: seats,
	}
}

// IsHeld claims the (screening, seat) pair for the current transaction and
// then reports whether an active booking already holds the seat. A claim held
// by a concurrent transaction counts as held.
func (g *AvailabilityGuard) IsHeld(ctx context.Context, screeningID, seatID int) (bool, error) {
	claimed, err := g.seats.TryClaim(ctx, screeningID, seatID)
	if err != nil {
		return false, err
	}

	if !claimed {
		return true, nil
	}

	return g.seats.IsHeld(ctx, screeningID, seatID)
}

// EnsureAvailable checks every seat in ascending ID order and fails with
// ErrSeatAlreadyReserved on the first held seat.
func (g *AvailabilityGuard) EnsureAvailable(ctx context.Context, screeningID int, seats []domain.Seat) error {
	ordered := slices.Clone(seats)
	slices.SortFunc(ordered, func(a, b domain.Seat) int {
		return a.ID - b.ID
	})

	for _, seat := range ordered {
		held, err := g.IsHeld(ctx, screeningID, seat.ID)
		if err != nil {
			return fmt.Errorf("failed to check seat %d: %w", seat.ID, err)
		}

		if held {
			return fmt.Errorf("seat row=%d col=%d: %w", seat.Row, seat.Col, domain.ErrSeatAlreadyReserved)
		}
	}

	return nil
}
