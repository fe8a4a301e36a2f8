package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the Postgres error code for a unique index violation.
const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err came from a violated unique index.
// This is how concurrent duplicate writes to a constrained tuple surface:
// the losing writer's INSERT fails here instead of being silently dropped.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}
