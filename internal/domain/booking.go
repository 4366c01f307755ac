package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusCreated   BookingStatus = "CREATED"
	BookingStatusPaid      BookingStatus = "PAID"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	ID           int
	UserID       int
	ScreeningID  int
	Status       BookingStatus
	TotalPrice   decimal.Decimal
	RefundAmount decimal.Decimal
	CreatedAt    time.Time
	PaidAt       *time.Time
	CancelledAt  *time.Time
	Items        []BookingItem
}

// IsActive reports whether the booking still holds its seats.
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusCreated || b.Status == BookingStatusPaid
}

type BookingItem struct {
	BookingID int
	SeatID    int
	Price     decimal.Decimal
}

type BookingRepository interface {
	Insert(ctx context.Context, booking *Booking) error
	InsertItems(ctx context.Context, items ...BookingItem) error
	GetById(ctx context.Context, id int) (*Booking, error)
	GetByIdForUpdate(ctx context.Context, id int) (*Booking, error)
	GetItems(ctx context.Context, bookingID int) ([]BookingItem, error)
	MarkPaid(ctx context.Context, id int, paidAt time.Time) error
	MarkCancelled(ctx context.Context, id int, refund decimal.Decimal, cancelledAt time.Time) error
}
