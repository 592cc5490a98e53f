package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error code for unique_violation.
const (
	PgErrUniqueViolation = "23505" // unique_violation
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// isOpenSessionConflict reports whether err is a violation of the
// one-open-session-per-employee index.
func isOpenSessionConflict(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == PgErrUniqueViolation && pgErr.ConstraintName == openSessionIndex
}
