package mocks

import (
	"context"

	"github.com/metinatakli/cinego/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockUnitOfWork hands its repositories straight to fn. There is no
// transaction, so writes made before a failing step are not undone.
type MockUnitOfWork struct {
	Screenings *MockScreeningRepo
	Seats      *MockSeatRepo
	Users      *MockUserRepo
	Bookings   *MockBookingRepo

	Calls int
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		Screenings: new(MockScreeningRepo),
		Seats:      new(MockSeatRepo),
		Users:      new(MockUserRepo),
		Bookings:   new(MockBookingRepo),
	}
}

func (m *MockUnitOfWork) RunInTx(ctx context.Context, fn func(repos domain.Repositories) error) error {
	m.Calls++

	return fn(domain.Repositories{
		Screenings: m.Screenings,
		Seats:      m.Seats,
		Users:      m.Users,
		Bookings:   m.Bookings,
	})
}

func (m *MockUnitOfWork) AssertExpectations(t mock.TestingT) {
	m.Screenings.AssertExpectations(t)
	m.Seats.AssertExpectations(t)
	m.Users.AssertExpectations(t)
	m.Bookings.AssertExpectations(t)
}
