// Package services orchestrates validation, duplicate detection and
// persistence for department registrations.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/campusreg/deptregistry/internal/app/models"
	"github.com/campusreg/deptregistry/internal/app/models/dto"
	"github.com/campusreg/deptregistry/internal/app/repositories"
	"github.com/campusreg/deptregistry/internal/pkg/apperrors"
	"github.com/campusreg/deptregistry/internal/pkg/validation"
)

// RegistrationService handles new department registrations.
type RegistrationService struct {
	departmentRepo repositories.IDepartmentRepository
	emailDomain    string
	logger         zerolog.Logger
}

// NewRegistrationService creates a new registration service. emailDomain is
// the institutional suffix every contact email must carry.
func NewRegistrationService(departmentRepo repositories.IDepartmentRepository, emailDomain string, logger zerolog.Logger) *RegistrationService {
	return &RegistrationService{
		departmentRepo: departmentRepo,
		emailDomain:    emailDomain,
		logger:         logger,
	}
}

// Register normalizes and validates the request fail-fast, rejects
// duplicate contact emails and persists a pending department. The duplicate
// pre-check and the insert are not transactional; a racing registration for
// the same email loses on the unique index and maps to the same conflict.
func (s *RegistrationService) Register(ctx context.Context, req *dto.RegisterDepartmentRequest) (*dto.DepartmentSummary, error) {
	departmentName := strings.TrimSpace(req.DepartmentName)
	university := strings.TrimSpace(req.University)
	admin := strings.TrimSpace(req.Admin)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Field order is part of the contract: departmentName, university,
	// admin, email, email domain. First failure wins.
	if res := validation.DepartmentName(departmentName); !res.Valid {
		return nil, apperrors.NewValidationError(res.Field, res.Message)
	}
	if res := validation.University(university); !res.Valid {
		return nil, apperrors.NewValidationError(res.Field, res.Message)
	}
	if res := validation.ContactPerson(admin); !res.Valid {
		// the registration payload names the contact person "admin"
		return nil, apperrors.NewValidationError("admin", res.Message)
	}
	if res := validation.Email(email); !res.Valid {
		return nil, apperrors.NewValidationError(res.Field, res.Message)
	}
	if res := validation.InstitutionalDomain(email, s.emailDomain); !res.Valid {
		return nil, apperrors.NewValidationError(res.Field, res.Message)
	}

	exists, err := s.departmentRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("email", "Department with this email already exists")
	}

	department := &models.Department{
		ID:             uuid.New(),
		DepartmentName: departmentName,
		University:     university,
		ContactEmail:   email,
		ContactPerson:  admin,
		Status:         models.StatusPending,
		CreatedAt:      time.Now(),
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, apperrors.NewConflictError("email", "Department with this email already exists")
		}
		return nil, fmt.Errorf("error creating department: %w", err)
	}

	s.logger.Info().
		Str("departmentId", department.ID.String()).
		Str("email", department.ContactEmail).
		Msg("Department registered, awaiting approval")

	return &dto.DepartmentSummary{
		ID:             department.ID.String(),
		DepartmentName: department.DepartmentName,
		University:     department.University,
		Email:          department.ContactEmail,
		Admin:          department.ContactPerson,
		Status:         string(department.Status),
	}, nil
}
