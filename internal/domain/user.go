package domain

import "context"

type User struct {
	ID            int
	FullName      string
	Phone         string
	LoyaltyPoints int
}

type UserRepository interface {
	GetById(ctx context.Context, id int) (*User, error)
	GetByIdForUpdate(ctx context.Context, id int) (*User, error)
	CreditPoints(ctx context.Context, userID, points int) error
	// DebitPoints floors the balance at zero.
	DebitPoints(ctx context.Context, userID, points int) error
}
