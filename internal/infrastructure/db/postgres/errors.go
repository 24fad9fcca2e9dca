package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// IsPgUniqueViolation reports whether err is a unique index violation. The
// unique indexes on lower(email) and lower(name) are the backstop for the
// non-transactional duplicate pre-checks in the services.
func IsPgUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsPgForeignKeyViolation reports whether err is a foreign key violation,
// i.e. the write referenced a row that does not exist.
func IsPgForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}
