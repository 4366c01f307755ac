package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/metinatakli/cinego/internal/domain"
	"github.com/shopspring/decimal"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// translateError maps driver errors onto domain errors. Lock and
// serialization failures become ErrConcurrentUpdate; callers decide what the
// contention means for their operation.
func translateError(err error) error {
	if err == nil ||
		errors.Is(err, domain.ErrRecordNotFound) ||
		errors.Is(err, domain.ErrSeatAlreadyReserved) ||
		errors.Is(err, domain.ErrConcurrentUpdate) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %w", domain.ErrRecordNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected, pgerrcode.LockNotAvailable:
			return fmt.Errorf("%w: %w", domain.ErrConcurrentUpdate, err)
		case pgerrcode.UniqueViolation:
			if pgErr.TableName == "booking_items" {
				return fmt.Errorf("%w: %w", domain.ErrSeatAlreadyReserved, err)
			}
		}
	}

	return err
}

func toNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   d.Coefficient(),
		Exp:   d.Exponent(),
		Valid: true,
	}
}
