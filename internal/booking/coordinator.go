package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/metinatakli/cinego/internal/domain"
	"github.com/metinatakli/cinego/internal/events"
	"github.com/metinatakli/cinego/internal/pricing"
	"github.com/shopspring/decimal"
)

type CreateBookingInput struct {
	UserID      int
	ScreeningID int
	Seats       []domain.SeatPosition
	Points      int
}

type CreateBookingResult struct {
	BookingID         int
	TotalBeforePoints decimal.Decimal
	TotalAfterPoints  decimal.Decimal
	UsedPoints        int
}

// Coordinator runs the booking operations. Each operation is one unit of
// work: every read and write goes through the same transaction and nothing
// is visible to other callers until it commits.
type Coordinator struct {
	uow       domain.UnitOfWork
	pricing   *pricing.Engine
	refunds   pricing.RefundPolicy
	publisher events.Publisher
	logger    *slog.Logger
	metrics   *metrics
	now       func() time.Time
}

type Option func(*Coordinator)

func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) {
		c.now = now
	}
}

func WithPublisher(publisher events.Publisher) Option {
	return func(c *Coordinator) {
		c.publisher = publisher
	}
}

func NewCoordinator(uow domain.UnitOfWork, engine *pricing.Engine, logger *slog.Logger, opts ...Option) *Coordinator {
	c := &Coordinator{
		uow:       uow,
		pricing:   engine,
		refunds:   pricing.NewRefundPolicy(),
		publisher: events.NoopPublisher{},
		logger:    logger,
		metrics:   newMetrics(),
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Coordinator) Create(ctx context.Context, input CreateBookingInput) (*CreateBookingResult, error) {
	positions, err := normalizeSeatPositions(input.Seats)
	if err != nil {
		return nil, err
	}

	var result CreateBookingResult
	var booking domain.Booking

	err = c.uow.RunInTx(ctx, func(repos domain.Repositories) error {
		screening, err := repos.Screenings.GetById(ctx, input.ScreeningID)
		if err != nil {
			return fmt.Errorf("screening %d: %w", input.ScreeningID, err)
		}

		user, err := repos.Users.GetByIdForUpdate(ctx, input.UserID)
		if err != nil {
			return fmt.Errorf("user %d: %w", input.UserID, err)
		}

		seats := make([]domain.Seat, 0, len(positions))
		for _, pos := range positions {
			seat, err := repos.Seats.GetByPosition(ctx, screening.HallID, pos.Row, pos.Col)
			if err != nil {
				return fmt.Errorf("seat row=%d col=%d: %w", pos.Row, pos.Col, err)
			}

			seats = append(seats, *seat)
		}

		err = NewAvailabilityGuard(repos.Seats).EnsureAvailable(ctx, screening.ID, seats)
		if err != nil {
			return err
		}

		items := make([]domain.BookingItem, len(seats))
		total := decimal.Zero

		for i, seat := range seats {
			price := c.pricing.SeatPrice(screening.BasePrice, seat.Type, screening.StartTime)

			items[i] = domain.BookingItem{SeatID: seat.ID, Price: price}
			total = total.Add(price)
		}

		total = pricing.RoundMoney(total)
		afterPoints := c.pricing.ApplyPointsDiscount(total, user.LoyaltyPoints, input.Points)
		usedPoints := pricing.UsedPoints(total, afterPoints)

		booking = domain.Booking{
			UserID:       user.ID,
			ScreeningID:  screening.ID,
			Status:       domain.BookingStatusCreated,
			TotalPrice:   afterPoints,
			RefundAmount: decimal.Zero,
			CreatedAt:    c.now(),
		}

		err = repos.Bookings.Insert(ctx, &booking)
		if err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		for i := range items {
			items[i].BookingID = booking.ID
		}

		err = repos.Bookings.InsertItems(ctx, items...)
		if err != nil {
			return fmt.Errorf("failed to insert booking items: %w", err)
		}

		if usedPoints > 0 {
			err = repos.Users.DebitPoints(ctx, user.ID, usedPoints)
			if err != nil {
				return fmt.Errorf("failed to debit loyalty points: %w", err)
			}
		}

		result = CreateBookingResult{
			BookingID:         booking.ID,
			TotalBeforePoints: total,
			TotalAfterPoints:  afterPoints,
			UsedPoints:        usedPoints,
		}

		return nil
	})
	if err != nil {
		// contention while creating can only come from a race on the seats
		if errors.Is(err, domain.ErrConcurrentUpdate) && !errors.Is(err, domain.ErrSeatAlreadyReserved) {
			err = fmt.Errorf("%w: %w", domain.ErrSeatAlreadyReserved, err)
		}

		if errors.Is(err, domain.ErrSeatAlreadyReserved) {
			c.metrics.seatConflicts.Add(ctx, 1)
			c.logger.Warn("booking rejected: seat already held",
				"screening_id", input.ScreeningID,
				"user_id", input.UserID,
				"error", err)
		}

		return nil, err
	}

	c.metrics.created.Add(ctx, 1)
	if result.UsedPoints > 0 {
		c.metrics.pointsUsed.Add(ctx, int64(result.UsedPoints))
	}

	c.logger.Info("booking created",
		"booking_id", result.BookingID,
		"screening_id", input.ScreeningID,
		"user_id", input.UserID,
		"seats", len(positions),
		"total", result.TotalAfterPoints.StringFixed(2),
		"used_points", result.UsedPoints)

	c.publish(ctx, events.BookingEvent{
		Type:        events.BookingCreated,
		BookingID:   booking.ID,
		UserID:      booking.UserID,
		ScreeningID: booking.ScreeningID,
		Status:      string(booking.Status),
		TotalPrice:  booking.TotalPrice,
		PointsUsed:  result.UsedPoints,
		OccurredAt:  booking.CreatedAt,
	})

	return &result, nil
}

func (c *Coordinator) Pay(ctx context.Context, bookingID int) (*domain.Booking, error) {
	var updated *domain.Booking
	var earned int

	err := c.uow.RunInTx(ctx, func(repos domain.Repositories) error {
		booking, err := repos.Bookings.GetByIdForUpdate(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("booking %d: %w", bookingID, err)
		}

		if booking.Status != domain.BookingStatusCreated {
			return fmt.Errorf("%w: only CREATED bookings can be paid, booking %d is %s",
				domain.ErrInvalidState, bookingID, booking.Status)
		}

		err = repos.Bookings.MarkPaid(ctx, bookingID, c.now())
		if err != nil {
			return fmt.Errorf("failed to mark booking %d paid: %w", bookingID, err)
		}

		earned = c.pricing.EarnedPoints(booking.TotalPrice)
		if earned > 0 {
			err = repos.Users.CreditPoints(ctx, booking.UserID, earned)
			if err != nil {
				return fmt.Errorf("failed to credit loyalty points: %w", err)
			}
		}

		updated, err = repos.Bookings.GetById(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("booking %d: %w", bookingID, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	c.metrics.paid.Add(ctx, 1)
	if earned > 0 {
		c.metrics.pointsEarned.Add(ctx, int64(earned))
	}

	c.logger.Info("booking paid", "booking_id", bookingID, "user_id", updated.UserID, "earned_points", earned)

	c.publish(ctx, events.BookingEvent{
		Type:         events.BookingPaid,
		BookingID:    updated.ID,
		UserID:       updated.UserID,
		ScreeningID:  updated.ScreeningID,
		Status:       string(updated.Status),
		TotalPrice:   updated.TotalPrice,
		PointsEarned: earned,
		OccurredAt:   occurredAt(updated.PaidAt, c.now),
	})

	return updated, nil
}

// Cancel releases the booking's seats and records the refund. Redeemed points
// are not restored and points earned on payment are not taken back.
func (c *Coordinator) Cancel(ctx context.Context, bookingID int) (*domain.Booking, error) {
	var updated *domain.Booking

	err := c.uow.RunInTx(ctx, func(repos domain.Repositories) error {
		booking, err := repos.Bookings.GetByIdForUpdate(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("booking %d: %w", bookingID, err)
		}

		if booking.Status == domain.BookingStatusCancelled {
			return fmt.Errorf("%w: booking %d is already cancelled", domain.ErrInvalidState, bookingID)
		}

		screening, err := repos.Screenings.GetById(ctx, booking.ScreeningID)
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				return fmt.Errorf("%w: screening %d of booking %d does not exist",
					domain.ErrInvalidState, booking.ScreeningID, bookingID)
			}

			return err
		}

		now := c.now()
		refund := c.refunds.Refund(booking.TotalPrice, screening.StartTime, now)

		err = repos.Bookings.MarkCancelled(ctx, bookingID, refund, now)
		if err != nil {
			return fmt.Errorf("failed to mark booking %d cancelled: %w", bookingID, err)
		}

		updated, err = repos.Bookings.GetById(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("booking %d: %w", bookingID, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	c.metrics.cancelled.Add(ctx, 1)

	c.logger.Info("booking cancelled",
		"booking_id", bookingID,
		"user_id", updated.UserID,
		"refund", updated.RefundAmount.StringFixed(2))

	refund := updated.RefundAmount
	c.publish(ctx, events.BookingEvent{
		Type:         events.BookingCancelled,
		BookingID:    updated.ID,
		UserID:       updated.UserID,
		ScreeningID:  updated.ScreeningID,
		Status:       string(updated.Status),
		TotalPrice:   updated.TotalPrice,
		RefundAmount: &refund,
		OccurredAt:   occurredAt(updated.CancelledAt, c.now),
	})

	return updated, nil
}

// Get returns a booking together with its items.
func (c *Coordinator) Get(ctx context.Context, bookingID int) (*domain.Booking, error) {
	var booking *domain.Booking

	err := c.uow.RunInTx(ctx, func(repos domain.Repositories) error {
		var err error

		booking, err = repos.Bookings.GetById(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("booking %d: %w", bookingID, err)
		}

		booking.Items, err = repos.Bookings.GetItems(ctx, bookingID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return booking, nil
}

func (c *Coordinator) publish(ctx context.Context, event events.BookingEvent) {
	err := c.publisher.Publish(ctx, event)
	if err != nil {
		c.logger.Error("failed to publish booking event",
			"type", event.Type,
			"booking_id", event.BookingID,
			"error", err)
	}
}

// normalizeSeatPositions rejects empty or malformed input and drops repeated
// coordinates so a seat listed twice is charged once.
func normalizeSeatPositions(positions []domain.SeatPosition) ([]domain.SeatPosition, error) {
	if len(positions) == 0 {
		return nil, fmt.Errorf("%w: at least one seat must be selected", domain.ErrValidation)
	}

	seen := make(map[domain.SeatPosition]struct{}, len(positions))
	unique := make([]domain.SeatPosition, 0, len(positions))

	for _, pos := range positions {
		if pos.Row < 1 || pos.Col < 1 {
			return nil, fmt.Errorf("%w: seat row=%d col=%d is out of range", domain.ErrValidation, pos.Row, pos.Col)
		}

		if _, ok := seen[pos]; ok {
			continue
		}

		seen[pos] = struct{}{}
		unique = append(unique, pos)
	}

	return unique, nil
}

func occurredAt(at *time.Time, now func() time.Time) time.Time {
	if at != nil {
		return *at
	}

	return now()
}
