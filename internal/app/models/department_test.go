package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDepartmentStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusApproved.Valid())
	assert.True(t, StatusRejected.Valid())
	assert.False(t, DepartmentStatus("archived").Valid())
	assert.False(t, DepartmentStatus("").Valid())
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from DepartmentStatus
		to   DepartmentStatus
		want bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusPending, false},
		{StatusApproved, StatusRejected, false},
		{StatusApproved, StatusPending, false},
		{StatusRejected, StatusApproved, false},
		{StatusRejected, StatusPending, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestHasValidApprovalToken(t *testing.T) {
	now := time.Now()
	token := "some-token"
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	t.Run("valid token and expiry", func(t *testing.T) {
		d := &Department{ApprovalToken: &token, TokenExpires: &future}
		assert.True(t, d.HasValidApprovalToken(now))
	})

	t.Run("no token", func(t *testing.T) {
		d := &Department{TokenExpires: &future}
		assert.False(t, d.HasValidApprovalToken(now))
	})

	t.Run("empty token", func(t *testing.T) {
		empty := ""
		d := &Department{ApprovalToken: &empty, TokenExpires: &future}
		assert.False(t, d.HasValidApprovalToken(now))
	})

	t.Run("token without expiry", func(t *testing.T) {
		d := &Department{ApprovalToken: &token}
		assert.False(t, d.HasValidApprovalToken(now))
	})

	t.Run("expired token", func(t *testing.T) {
		d := &Department{ApprovalToken: &token, TokenExpires: &past}
		assert.False(t, d.HasValidApprovalToken(now))
	})
}
