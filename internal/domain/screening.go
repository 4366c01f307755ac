package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Screening struct {
	ID        int
	MovieID   int
	HallID    int
	StartTime time.Time
	BasePrice decimal.Decimal
}

type ScreeningRepository interface {
	GetById(ctx context.Context, id int) (*Screening, error)
}
