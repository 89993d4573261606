package dberrors

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError

	"github.com/yigit/campus/internal/pkg/apperrors"
)

// PostgreSQL SQLSTATE codes handled by Translate
const (
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// IsConnectivityError reports whether err means the database was not reachable.
func IsConnectivityError(err error) bool {
	if err == nil {
		return false
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var pgErr *pgconn.PgError
	// class 08: connection exception
	return errors.As(err, &pgErr) && len(pgErr.Code) == 5 && pgErr.Code[:2] == "08"
}

// Translate maps a gateway error onto the application error taxonomy.
// It returns nil for nil and leaves already translated errors untouched.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var (
		verr  *apperrors.ValidationError
		fkErr *apperrors.ForeignKeyError
		cErr  *apperrors.ConnectionError
		dbErr *apperrors.DatabaseError
	)
	if errors.As(err, &verr) || errors.As(err, &fkErr) || errors.As(err, &cErr) || errors.As(err, &dbErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeNotNullViolation:
			return apperrors.NewValidationError(apperrors.Violation{
				Message: pgErr.TableName + "." + pgErr.ColumnName + " cannot be null",
				Type:    "notNull Violation",
				Path:    pgErr.ColumnName,
			})
		case codeCheckViolation:
			return apperrors.NewValidationError(apperrors.Violation{
				Message: pgErr.Message,
				Type:    "Validation error",
				Path:    pgErr.ColumnName,
			})
		case codeForeignKeyViolation:
			return &apperrors.ForeignKeyError{
				Table:      pgErr.TableName,
				Constraint: pgErr.ConstraintName,
				Err:        err,
			}
		}
	}

	if IsConnectivityError(err) {
		return &apperrors.ConnectionError{Err: err}
	}

	return &apperrors.DatabaseError{Err: err}
}
