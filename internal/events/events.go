package events

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type EventType string

const (
	BookingCreated   EventType = "booking.created"
	BookingPaid      EventType = "booking.paid"
	BookingCancelled EventType = "booking.cancelled"
)

type BookingEvent struct {
	Type         EventType        `json:"type"`
	BookingID    int              `json:"bookingId"`
	UserID       int              `json:"userId"`
	ScreeningID  int              `json:"screeningId"`
	Status       string           `json:"status"`
	TotalPrice   decimal.Decimal  `json:"totalPrice"`
	RefundAmount *decimal.Decimal `json:"refundAmount,omitempty"`
	PointsUsed   int              `json:"pointsUsed,omitempty"`
	PointsEarned int              `json:"pointsEarned,omitempty"`
	OccurredAt   time.Time        `json:"occurredAt"`
}

type Publisher interface {
	Publish(ctx context.Context, event BookingEvent) error
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, BookingEvent) error {
	return nil
}
