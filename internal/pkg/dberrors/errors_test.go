package dberrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyUniqueViolation(t *testing.T) {
	err := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "departments_contact_email_key",
	}

	c := Classify(err)
	assert.Equal(t, CodeDuplicateEntry, c.Code)
	assert.Equal(t, "email", c.Field)
	assert.Equal(t, "email is already registered", c.Message)
}

func TestClassifyUniqueViolationUnknownConstraint(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "some_other_key"}

	c := Classify(err)
	assert.Equal(t, CodeDuplicateEntry, c.Code)
	assert.Empty(t, c.Field)
	assert.Equal(t, "Value is already registered", c.Message)
}

func TestClassifyInvalidTextRepresentation(t *testing.T) {
	err := &pgconn.PgError{Code: "22P02", Message: "invalid input syntax for type uuid"}

	c := Classify(err)
	assert.Equal(t, CodeInvalidIDFormat, c.Code)
}

func TestClassifyIntegrityViolation(t *testing.T) {
	err := &pgconn.PgError{Code: "23514", Message: "check constraint violated"}

	c := Classify(err)
	assert.Equal(t, CodeValidation, c.Code)
	assert.Equal(t, []string{"check constraint violated"}, c.Details)
}

func TestClassifyConnectionFaults(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"pg connection exception", &pgconn.PgError{Code: "08006"}},
		{"deadline exceeded", context.DeadlineExceeded},
		{"cancelled context", fmt.Errorf("query: %w", context.Canceled)},
		{"net error", &net.OpError{Op: "dial", Err: errors.New("connection refused")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.err)
			assert.Equal(t, CodeConnection, c.Code)
		})
	}
}

func TestClassifyUnknownError(t *testing.T) {
	c := Classify(errors.New("something unexpected"))
	assert.Equal(t, CodeDatabase, c.Code)
	assert.Equal(t, "A database error occurred", c.Message)
	assert.Empty(t, c.Details, "unknown faults stay opaque to clients")
}

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "departments_contact_email_key",
	})

	assert.True(t, IsUniqueViolation(err, "departments_contact_email_key"))
	assert.False(t, IsUniqueViolation(err, "departments_approval_token_key"))
	assert.False(t, IsUniqueViolation(errors.New("plain"), "departments_contact_email_key"))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(pgx.ErrNoRows))
	assert.True(t, IsNotFound(fmt.Errorf("scan: %w", pgx.ErrNoRows)))
	assert.False(t, IsNotFound(errors.New("other")))
}
