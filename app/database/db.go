package database

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// ErrNotFound is returned whenever a lookup by id matches no row.
var ErrNotFound = errors.New("record not found")

// rowQueryer is satisfied by both *sql.DB and *sql.Tx so single-row
// queries can run inside or outside a transaction.
type rowQueryer interface {
	QueryRow(query string, args ...interface{}) *sql.Row
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation, optionally on a specific constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if pqErr.Code != "23505" {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}

// requireRow turns a zero-row update into ErrNotFound.
func requireRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func notFoundOr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
