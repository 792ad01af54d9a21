// Package dberrors classifies storage-layer faults into the generic
// categories the API exposes, so any handler can translate an unexpected
// database error the same way.
package dberrors

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Error codes surfaced to API clients.
const (
	CodeDuplicateEntry  = "DUPLICATE_ENTRY"
	CodeValidation      = "VALIDATION_ERROR"
	CodeInvalidIDFormat = "INVALID_ID_FORMAT"
	CodeConnection      = "DATABASE_CONNECTION_ERROR"
	CodeDatabase        = "DATABASE_ERROR"
)

// Classification is the result of mapping a raw storage error onto one of
// the generic fault categories.
type Classification struct {
	Code    string
	Field   string
	Message string
	Details []string
}

// constraintFields maps unique constraint names to the API field they guard.
var constraintFields = map[string]string{
	"departments_contact_email_key":  "email",
	"departments_approval_token_key": "approvalToken",
}

// IsUniqueViolation checks if err is a PostgreSQL unique violation (23505)
// for the given constraint.
func IsUniqueViolation(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraintName
}

// IsNotFound reports whether err means no row matched the query.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// Classify maps a raw storage error to a Classification. Unrecognized
// errors fall through to the opaque CodeDatabase category; the caller is
// expected to log them rather than detail them to the client.
func Classify(err error) Classification {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505":
			field := constraintFields[pgErr.ConstraintName]
			return Classification{
				Code:    CodeDuplicateEntry,
				Field:   field,
				Message: duplicateMessage(field),
			}
		case pgErr.Code == "22P02":
			// invalid_text_representation, e.g. a malformed UUID
			return Classification{
				Code:    CodeInvalidIDFormat,
				Message: "Invalid identifier format",
			}
		case strings.HasPrefix(pgErr.Code, "23"), strings.HasPrefix(pgErr.Code, "22"):
			// remaining integrity and data violations surface as schema
			// validation failures
			return Classification{
				Code:    CodeValidation,
				Message: "Validation failed",
				Details: []string{pgErr.Message},
			}
		case strings.HasPrefix(pgErr.Code, "08"):
			// connection_exception class
			return Classification{
				Code:    CodeConnection,
				Message: "Database connection error. Please try again.",
			}
		}
	}

	if isConnectivityError(err) {
		return Classification{
			Code:    CodeConnection,
			Message: "Database connection error. Please try again.",
		}
	}

	return Classification{
		Code:    CodeDatabase,
		Message: "A database error occurred",
	}
}

// isConnectivityError covers faults raised before the server could answer:
// dial failures, timeouts and cancelled contexts.
func isConnectivityError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

func duplicateMessage(field string) string {
	if field == "" {
		return "Value is already registered"
	}
	return field + " is already registered"
}
