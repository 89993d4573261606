package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrStudentNotFound is returned when no student row matches a primary key
var ErrStudentNotFound = errors.New("Student not found")

// notFoundErrors are the sentinels answered with a 404
var notFoundErrors = []error{ErrStudentNotFound}

// Error names written in serialized error bodies
const (
	NameValidation = "ValidationError"
	NameForeignKey = "ForeignKeyConstraintError"
	NameConnection = "ConnectionError"
	NameDatabase   = "DatabaseError"
	NameNotFound   = "NotFoundError"
)

// Violation is one attribute that failed validation
type Violation struct {
	Message string
	Type    string
	Path    string
	Value   interface{}
}

// ValidationError reports missing or invalid attributes on create/update.
type ValidationError struct {
	Violations []Violation
}

// NewValidationError creates a ValidationError from violations
func NewValidationError(violations ...Violation) *ValidationError {
	return &ValidationError{Violations: violations}
}

// Error implements error interface
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "Validation error"
	}
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, fmt.Sprintf("%s: %s", v.Type, v.Message))
	}
	return strings.Join(msgs, ",\n")
}

// ForeignKeyError reports a reference to a missing parent row.
type ForeignKeyError struct {
	Table      string
	Constraint string
	Err        error
}

// Error implements error interface
func (e *ForeignKeyError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("insert or update on table %q violates foreign key constraint %q", e.Table, e.Constraint)
}

// Unwrap implements errors.Unwrap interface
func (e *ForeignKeyError) Unwrap() error {
	return e.Err
}

// ConnectionError reports that the database could not be reached.
type ConnectionError struct {
	Err error
}

// Error implements error interface
func (e *ConnectionError) Error() string {
	if e.Err == nil {
		return "database connection failed"
	}
	return e.Err.Error()
}

// Unwrap implements errors.Unwrap interface
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// DatabaseError wraps any other failure returned by the database.
type DatabaseError struct {
	Err error
}

// Error implements error interface
func (e *DatabaseError) Error() string {
	if e.Err == nil {
		return "database error"
	}
	return e.Err.Error()
}

// Unwrap implements errors.Unwrap interface
func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// NotFound returns the not-found sentinel in err's chain, or nil when there is none
func NotFound(err error) error {
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return nil
}

// IsNotFound reports whether err is one of the not-found sentinels
func IsNotFound(err error) bool {
	return NotFound(err) != nil
}

// Cause returns the classified error inside err's chain, or err itself when
// nothing in the chain is classified.
func Cause(err error) error {
	var (
		verr  *ValidationError
		fkErr *ForeignKeyError
		cErr  *ConnectionError
		dbErr *DatabaseError
	)
	switch {
	case errors.As(err, &verr):
		return verr
	case errors.As(err, &fkErr):
		return fkErr
	case errors.As(err, &cErr):
		return cErr
	case errors.As(err, &dbErr):
		return dbErr
	default:
		return err
	}
}

// Name returns the taxonomy name of err. Unclassified errors are reported as
// database errors.
func Name(err error) string {
	var (
		verr  *ValidationError
		fkErr *ForeignKeyError
		cErr  *ConnectionError
	)
	switch {
	case errors.As(err, &verr):
		return NameValidation
	case errors.As(err, &fkErr):
		return NameForeignKey
	case errors.As(err, &cErr):
		return NameConnection
	case IsNotFound(err):
		return NameNotFound
	default:
		return NameDatabase
	}
}
