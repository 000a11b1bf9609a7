package repository

import (
	"errors"

	"favkart/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// translateError turns constraint and data violations reported by PostgreSQL
// into validation errors. Any other error is returned unchanged.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch {
	case pgerrcode.IsIntegrityConstraintViolation(pgErr.Code),
		pgerrcode.IsDataException(pgErr.Code):
		msg := pgErr.Message
		if pgErr.Detail != "" {
			msg = msg + ": " + pgErr.Detail
		}
		return model.NewValidationError(msg)
	}

	return err
}
