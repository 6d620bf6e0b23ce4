package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"medvault/internal/repository"
)

// pgUniqueViolation is SQLSTATE unique_violation.
const pgUniqueViolation = "23505"

// isUniqueViolation reports whether err is a PostgreSQL unique violation on a
// constraint whose name contains constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation &&
			strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraint))
	}
	return false
}

// translateWriteErr maps a unique email violation to repository.ErrEmailTaken.
func translateWriteErr(err error) error {
	if isUniqueViolation(err, "email") {
		return repository.ErrEmailTaken
	}
	return err
}
