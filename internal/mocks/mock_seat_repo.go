package mocks

import (
	"context"

	"github.com/metinatakli/cinego/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockSeatRepo struct {
	mock.Mock
	domain.SeatRepository
}

func (m *MockSeatRepo) GetByPosition(ctx context.Context, hallID, row, col int) (*domain.Seat, error) {
	args := m.Called(ctx, hallID, row, col)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seat), args.Error(1)
}

func (m *MockSeatRepo) TryClaim(ctx context.Context, screeningID, seatID int) (bool, error) {
	args := m.Called(ctx, screeningID, seatID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSeatRepo) IsHeld(ctx context.Context, screeningID, seatID int) (bool, error) {
	args := m.Called(ctx, screeningID, seatID)
	return args.Bool(0), args.Error(1)
}
