package domain

import "context"

// Repositories groups the repositories bound to a single transaction.
type Repositories struct {
	Screenings ScreeningRepository
	Seats      SeatRepository
	Users      UserRepository
	Bookings   BookingRepository
}

// UnitOfWork runs fn inside one transaction. The transaction is committed
// when fn returns nil and rolled back otherwise.
type UnitOfWork interface {
	RunInTx(ctx context.Context, fn func(repos Repositories) error) error
}
