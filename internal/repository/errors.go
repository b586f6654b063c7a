package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
	// ErrStale is returned by conditional updates whose precondition no
	// longer holds when the statement runs.
	ErrStale = errors.New("record changed concurrently")
	// ErrOutOfRange means a value overflowed its column.
	ErrOutOfRange = errors.New("value out of range")
)

const (
	postgresUniqueViolation = "23505"
	postgresNumericOverflow = "22003"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == postgresUniqueViolation
}

func translate(err error) error {
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == postgresNumericOverflow {
		return ErrOutOfRange
	}
	return err
}
