package repository

import (
	"context"

	"github.com/metinatakli/cinego/internal/domain"
)

type PostgresUserRepository struct {
	db DBTX
}

func NewPostgresUserRepository(db DBTX) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

func (p *PostgresUserRepository) GetById(ctx context.Context, id int) (*domain.User, error) {
	return p.get(ctx, `SELECT id, full_name, phone, loyalty_points FROM users WHERE id = $1`, id)
}

// GetByIdForUpdate row-locks the user so concurrent bookings cannot spend the
// same loyalty points twice.
func (p *PostgresUserRepository) GetByIdForUpdate(ctx context.Context, id int) (*domain.User, error) {
	return p.get(ctx, `SELECT id, full_name, phone, loyalty_points FROM users WHERE id = $1 FOR UPDATE`, id)
}

func (p *PostgresUserRepository) get(ctx context.Context, query string, id int) (*domain.User, error) {
	var user domain.User

	err := p.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.FullName,
		&user.Phone,
		&user.LoyaltyPoints,
	)
	if err != nil {
		return nil, translateError(err)
	}

	return &user, nil
}

func (p *PostgresUserRepository) CreditPoints(ctx context.Context, userID, points int) error {
	query := `UPDATE users SET loyalty_points = loyalty_points + $1 WHERE id = $2`

	return p.updatePoints(ctx, query, userID, points)
}

func (p *PostgresUserRepository) DebitPoints(ctx context.Context, userID, points int) error {
	query := `UPDATE users SET loyalty_points = GREATEST(loyalty_points - $1, 0) WHERE id = $2`

	return p.updatePoints(ctx, query, userID, points)
}

func (p *PostgresUserRepository) updatePoints(ctx context.Context, query string, userID, points int) error {
	tag, err := p.db.Exec(ctx, query, points, userID)
	if err != nil {
		return translateError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
