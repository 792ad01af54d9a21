package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusreg/deptregistry/internal/app/models"
)

func newDepartment() *models.Department {
	return &models.Department{
		ID:             uuid.New(),
		DepartmentName: "Physics",
		University:     "State University",
		ContactEmail:   uuid.NewString() + "@university.edu",
		ContactPerson:  "Jane Doe",
		Status:         models.StatusPending,
		CreatedAt:      time.Now(),
	}
}

func TestMemoryRepositoryCreateAndGet(t *testing.T) {
	repo := NewMemoryDepartmentRepository()
	ctx := context.Background()

	department := newDepartment()
	require.NoError(t, repo.Create(ctx, department))

	got, err := repo.GetByID(ctx, department.ID)
	require.NoError(t, err)
	assert.Equal(t, department.ContactEmail, got.ContactEmail)

	// reads return copies, mutating them must not affect the store
	got.DepartmentName = "Changed"
	again, err := repo.GetByID(ctx, department.ID)
	require.NoError(t, err)
	assert.Equal(t, "Physics", again.DepartmentName)
}

func TestMemoryRepositoryDuplicateEmail(t *testing.T) {
	repo := NewMemoryDepartmentRepository()
	ctx := context.Background()

	first := newDepartment()
	require.NoError(t, repo.Create(ctx, first))

	second := newDepartment()
	second.ContactEmail = first.ContactEmail
	assert.ErrorIs(t, repo.Create(ctx, second), ErrDuplicateEmail)

	exists, err := repo.EmailExists(ctx, first.ContactEmail)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMemoryRepositoryNotFound(t *testing.T) {
	repo := NewMemoryDepartmentRepository()
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrDepartmentNotFound)

	_, err = repo.GetByApprovalToken(ctx, "nope")
	assert.ErrorIs(t, err, ErrDepartmentNotFound)

	err = repo.UpdateStatus(ctx, uuid.New(), models.StatusApproved, nil, nil)
	assert.ErrorIs(t, err, ErrDepartmentNotFound)
}

func TestMemoryRepositoryStatusAndPassword(t *testing.T) {
	repo := NewMemoryDepartmentRepository()
	ctx := context.Background()

	department := newDepartment()
	require.NoError(t, repo.Create(ctx, department))

	token := uuid.NewString()
	expires := time.Now().Add(time.Hour)
	require.NoError(t, repo.UpdateStatus(ctx, department.ID, models.StatusApproved, &token, &expires))

	byToken, err := repo.GetByApprovalToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, department.ID, byToken.ID)
	assert.Equal(t, models.StatusApproved, byToken.Status)

	require.NoError(t, repo.SetAdminPassword(ctx, department.ID, "hash"))

	stored, err := repo.GetByID(ctx, department.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.AdminPassword)
	assert.Equal(t, "hash", *stored.AdminPassword)
	assert.Nil(t, stored.ApprovalToken, "token consumed when the password is set")
	assert.Nil(t, stored.TokenExpires)
}
