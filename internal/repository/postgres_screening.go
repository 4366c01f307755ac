package repository

import (
	"context"

	"github.com/metinatakli/cinego/internal/domain"
)

type PostgresScreeningRepository struct {
	db DBTX
}

func NewPostgresScreeningRepository(db DBTX) *PostgresScreeningRepository {
	return &PostgresScreeningRepository{
		db: db,
	}
}

func (p *PostgresScreeningRepository) GetById(ctx context.Context, id int) (*domain.Screening, error) {
	query := `
		SELECT id, movie_id, hall_id, start_time, base_price
		FROM screenings
		WHERE id = $1
	`

	var screening domain.Screening

	err := p.db.QueryRow(ctx, query, id).Scan(
		&screening.ID,
		&screening.MovieID,
		&screening.HallID,
		&screening.StartTime,
		&screening.BasePrice,
	)
	if err != nil {
		return nil, translateError(err)
	}

	return &screening, nil
}
