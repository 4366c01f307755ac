package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/metinatakli/cinego/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const DefaultScreeningCacheTTL = 5 * time.Minute

type cachedScreening struct {
	ID        int             `json:"id"`
	MovieID   int             `json:"movieId"`
	HallID    int             `json:"hallId"`
	StartTime time.Time       `json:"startTime"`
	BasePrice decimal.Decimal `json:"basePrice"`
}

// CachedScreeningRepository serves screenings from redis and falls back to
// the wrapped repository on a miss. Redis failures are logged and never fail
// the read.
type CachedScreeningRepository struct {
	next   domain.ScreeningRepository
	redis  redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedScreeningRepository(
	next domain.ScreeningRepository,
	client redis.UniversalClient,
	ttl time.Duration,
	logger *slog.Logger) *CachedScreeningRepository {

	if ttl <= 0 {
		ttl = DefaultScreeningCacheTTL
	}

	return &CachedScreeningRepository{
		next:   next,
		redis:  client,
		ttl:    ttl,
		logger: logger,
	}
}

func screeningCacheKey(id int) string {
	return fmt.Sprintf("screening:%d", id)
}

func (c *CachedScreeningRepository) GetById(ctx context.Context, id int) (*domain.Screening, error) {
	key := screeningCacheKey(id)

	data, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached cachedScreening
		if err := json.Unmarshal(data, &cached); err == nil {
			return &domain.Screening{
				ID:        cached.ID,
				MovieID:   cached.MovieID,
				HallID:    cached.HallID,
				StartTime: cached.StartTime,
				BasePrice: cached.BasePrice,
			}, nil
		}

		c.logger.Warn("discarding malformed cached screening", "key", key)
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("failed to read screening from cache", "key", key, "error", err)
	}

	screening, err := c.next.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err = json.Marshal(cachedScreening{
		ID:        screening.ID,
		MovieID:   screening.MovieID,
		HallID:    screening.HallID,
		StartTime: screening.StartTime,
		BasePrice: screening.BasePrice,
	})
	if err != nil {
		return screening, nil
	}

	err = c.redis.Set(ctx, key, data, c.ttl).Err()
	if err != nil {
		c.logger.Warn("failed to cache screening", "key", key, "error", err)
	}

	return screening, nil
}
