package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinego/internal/domain"
	"github.com/redis/go-redis/v9"
)

type PostgresUnitOfWork struct {
	db *pgxpool.Pool

	cache    redis.UniversalClient
	cacheTTL time.Duration
	logger   *slog.Logger
}

type UnitOfWorkOption func(*PostgresUnitOfWork)

// WithScreeningCache serves screening reads through redis. Screenings are
// reference data that bookings never modify.
func WithScreeningCache(client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) UnitOfWorkOption {
	return func(u *PostgresUnitOfWork) {
		u.cache = client
		u.cacheTTL = ttl
		u.logger = logger
	}
}

func NewPostgresUnitOfWork(db *pgxpool.Pool, opts ...UnitOfWorkOption) *PostgresUnitOfWork {
	u := &PostgresUnitOfWork{
		db: db,
	}

	for _, opt := range opts {
		opt(u)
	}

	return u
}

func (u *PostgresUnitOfWork) RunInTx(ctx context.Context, fn func(repos domain.Repositories) error) error {
	err := runInTx(ctx, u.db, func(tx pgx.Tx) error {
		return fn(u.repositories(tx))
	})

	return translateError(err)
}

func (u *PostgresUnitOfWork) repositories(tx pgx.Tx) domain.Repositories {
	var screenings domain.ScreeningRepository = NewPostgresScreeningRepository(tx)
	if u.cache != nil {
		screenings = NewCachedScreeningRepository(screenings, u.cache, u.cacheTTL, u.logger)
	}

	return domain.Repositories{
		Screenings: screenings,
		Seats:      NewPostgresSeatRepository(tx),
		Users:      NewPostgresUserRepository(tx),
		Bookings:   NewPostgresBookingRepository(tx),
	}
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	txOptions := pgx.TxOptions{
		IsoLevel: pgx.ReadCommitted,
	}

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}
