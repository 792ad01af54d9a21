package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campusreg/deptregistry/internal/app/models"
)

// MemoryDepartmentRepository is an in-memory IDepartmentRepository used by
// tests. It mirrors the storage layer's behavior, including the unique
// contact-email constraint that arbitrates registration races.
type MemoryDepartmentRepository struct {
	mu          sync.Mutex
	departments map[uuid.UUID]*models.Department
}

// NewMemoryDepartmentRepository creates an empty in-memory repository.
func NewMemoryDepartmentRepository() *MemoryDepartmentRepository {
	return &MemoryDepartmentRepository{
		departments: make(map[uuid.UUID]*models.Department),
	}
}

// Create inserts a department, enforcing contact-email uniqueness the way
// the unique index does.
func (r *MemoryDepartmentRepository) Create(_ context.Context, department *models.Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.departments {
		if existing.ContactEmail == department.ContactEmail {
			return ErrDuplicateEmail
		}
	}

	stored := *department
	r.departments[department.ID] = &stored
	return nil
}

// GetByID retrieves a department by ID.
func (r *MemoryDepartmentRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	department, ok := r.departments[id]
	if !ok {
		return nil, ErrDepartmentNotFound
	}

	copy := *department
	return &copy, nil
}

// GetByApprovalToken retrieves the department holding the given token.
func (r *MemoryDepartmentRepository) GetByApprovalToken(_ context.Context, token string) (*models.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, department := range r.departments {
		if department.ApprovalToken != nil && *department.ApprovalToken == token {
			copy := *department
			return &copy, nil
		}
	}

	return nil, ErrDepartmentNotFound
}

// EmailExists checks for an existing record under the normalized email.
func (r *MemoryDepartmentRepository) EmailExists(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, department := range r.departments {
		if department.ContactEmail == email {
			return true, nil
		}
	}

	return false, nil
}

// UpdateStatus transitions status and replaces the approval token.
func (r *MemoryDepartmentRepository) UpdateStatus(_ context.Context, id uuid.UUID, status models.DepartmentStatus, token *string, expires *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	department, ok := r.departments[id]
	if !ok {
		return ErrDepartmentNotFound
	}

	department.Status = status
	department.ApprovalToken = token
	department.TokenExpires = expires
	return nil
}

// SetAdminPassword stores the hash and consumes the approval token.
func (r *MemoryDepartmentRepository) SetAdminPassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	department, ok := r.departments[id]
	if !ok {
		return ErrDepartmentNotFound
	}

	department.AdminPassword = &passwordHash
	department.ApprovalToken = nil
	department.TokenExpires = nil
	return nil
}
