package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"adrelay/internal/core/domain"
)

const uniqueViolation = "23505"

// storeErr marks err as a storage failure so callers can match it with
// errors.Is(err, domain.ErrStoreUnavailable).
func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, op, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
