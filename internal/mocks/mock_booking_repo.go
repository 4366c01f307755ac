package mocks

import (
	"context"
	"time"

	"github.com/metinatakli/cinego/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepo struct {
	mock.Mock
	domain.BookingRepository
}

func (m *MockBookingRepo) Insert(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepo) InsertItems(ctx context.Context, items ...domain.BookingItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockBookingRepo) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetByIdForUpdate(ctx context.Context, id int) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetItems(ctx context.Context, bookingID int) ([]domain.BookingItem, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingItem), args.Error(1)
}

func (m *MockBookingRepo) MarkPaid(ctx context.Context, id int, paidAt time.Time) error {
	args := m.Called(ctx, id, paidAt)
	return args.Error(0)
}

func (m *MockBookingRepo) MarkCancelled(ctx context.Context, id int, refund decimal.Decimal, cancelledAt time.Time) error {
	args := m.Called(ctx, id, refund, cancelledAt)
	return args.Error(0)
}
