package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"hrms-lite/internal/models"
)

// DB is the query surface the repositories need. Both *pgxpool.Pool and
// the pgxmock pool satisfy it.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

const uniqueViolationCode = "23505"

// translateUniqueViolation maps a unique-constraint violation raised at
// write time to the matching domain error. Pre-checks catch duplicates in
// the common case; this is the safety net for concurrent writers.
func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return err
	}
	switch pgErr.ConstraintName {
	case "employees_employee_id_key":
		return models.ErrEmployeeIDTaken
	case "employees_email_key":
		return models.ErrEmailTaken
	case "uq_employee_date":
		return models.ErrDuplicateAttendance
	}
	return err
}
