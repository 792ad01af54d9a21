// Package models defines the department entity and its status state machine.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DepartmentStatus enumerates the lifecycle states of a registration.
type DepartmentStatus string

const (
	StatusPending  DepartmentStatus = "pending"
	StatusApproved DepartmentStatus = "approved"
	StatusRejected DepartmentStatus = "rejected"
)

// Valid reports whether s is one of the enumerated statuses.
func (s DepartmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether the transition s -> next is legal.
// Only pending departments move; approved and rejected are terminal.
func (s DepartmentStatus) CanTransitionTo(next DepartmentStatus) bool {
	if s != StatusPending {
		return false
	}
	return next == StatusApproved || next == StatusRejected
}

// Department is a department registration record. AdminPassword only ever
// holds the bcrypt hash; the plaintext is never persisted. ApprovalToken
// and TokenExpires are only meaningful together.
type Department struct {
	ID             uuid.UUID
	DepartmentName string
	University     string
	ContactEmail   string
	ContactPerson  string
	Status         DepartmentStatus
	AdminPassword  *string
	ApprovalToken  *string
	TokenExpires   *time.Time
	CreatedAt      time.Time
}

// HasValidApprovalToken reports whether the record carries an approval
// token that is still usable at the given time. A token without an expiry,
// or past it, is invalid for activation.
func (d *Department) HasValidApprovalToken(now time.Time) bool {
	if d.ApprovalToken == nil || *d.ApprovalToken == "" {
		return false
	}
	if d.TokenExpires == nil {
		return false
	}
	return d.TokenExpires.After(now)
}
