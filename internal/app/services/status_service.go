package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/campusreg/deptregistry/internal/app/models/dto"
	"github.com/campusreg/deptregistry/internal/app/repositories"
	"github.com/campusreg/deptregistry/internal/pkg/apperrors"
)

// StatusService reports the public status of a department registration.
type StatusService struct {
	departmentRepo repositories.IDepartmentRepository
}

// NewStatusService creates a new status service.
func NewStatusService(departmentRepo repositories.IDepartmentRepository) *StatusService {
	return &StatusService{
		departmentRepo: departmentRepo,
	}
}

// GetStatus looks up a department by identifier and projects the public
// subset of its fields. Read-only.
func (s *StatusService) GetStatus(ctx context.Context, id uuid.UUID) (*dto.StatusView, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrDepartmentNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return &dto.StatusView{
		DepartmentName: department.DepartmentName,
		University:     department.University,
		Status:         string(department.Status),
	}, nil
}
