package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrCustomerNotFound is returned when an operation references a
	// customer_oid absent from storage.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrDuplicateCustomer is returned when creating a customer whose
	// identifier already exists.
	ErrDuplicateCustomer = errors.New("customer already exists")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
