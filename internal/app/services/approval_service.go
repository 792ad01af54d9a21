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
	"github.com/campusreg/deptregistry/internal/pkg/auth"
	"github.com/campusreg/deptregistry/internal/pkg/validation"
)

// ApprovalService drives the status state machine: pending departments are
// approved or rejected, and an approved department's admin sets the account
// password with the issued token.
type ApprovalService struct {
	departmentRepo repositories.IDepartmentRepository
	tokenTTL       time.Duration
	logger         zerolog.Logger
}

// NewApprovalService creates a new approval service. tokenTTL bounds the
// validity of issued approval tokens.
func NewApprovalService(departmentRepo repositories.IDepartmentRepository, tokenTTL time.Duration, logger zerolog.Logger) *ApprovalService {
	return &ApprovalService{
		departmentRepo: departmentRepo,
		tokenTTL:       tokenTTL,
		logger:         logger,
	}
}

// Approve transitions a pending department to approved and issues the
// approval token that authorizes the later password activation.
func (s *ApprovalService) Approve(ctx context.Context, id uuid.UUID) (*dto.ApprovalView, error) {
	department, err := s.getDepartment(ctx, id)
	if err != nil {
		return nil, err
	}

	if !department.Status.CanTransitionTo(models.StatusApproved) {
		return nil, apperrors.NewConflictError("status",
			fmt.Sprintf("Cannot approve a department in status %q", department.Status))
	}

	token, expires := auth.NewApprovalToken(s.tokenTTL)
	if err := s.departmentRepo.UpdateStatus(ctx, department.ID, models.StatusApproved, &token, &expires); err != nil {
		return nil, fmt.Errorf("error approving department: %w", err)
	}

	s.logger.Info().
		Str("departmentId", department.ID.String()).
		Time("tokenExpires", expires).
		Msg("Department approved, activation token issued")

	return &dto.ApprovalView{
		ID:            department.ID.String(),
		Status:        string(models.StatusApproved),
		ApprovalToken: token,
		TokenExpires:  expires,
	}, nil
}

// Reject transitions a pending department to rejected.
func (s *ApprovalService) Reject(ctx context.Context, id uuid.UUID) (*dto.StatusView, error) {
	department, err := s.getDepartment(ctx, id)
	if err != nil {
		return nil, err
	}

	if !department.Status.CanTransitionTo(models.StatusRejected) {
		return nil, apperrors.NewConflictError("status",
			fmt.Sprintf("Cannot reject a department in status %q", department.Status))
	}

	if err := s.departmentRepo.UpdateStatus(ctx, department.ID, models.StatusRejected, nil, nil); err != nil {
		return nil, fmt.Errorf("error rejecting department: %w", err)
	}

	s.logger.Info().
		Str("departmentId", department.ID.String()).
		Msg("Department rejected")

	return &dto.StatusView{
		DepartmentName: department.DepartmentName,
		University:     department.University,
		Status:         string(models.StatusRejected),
	}, nil
}

// ActivatePassword validates the approval token and stores the hashed admin
// password. The token is consumed on success.
func (s *ApprovalService) ActivatePassword(ctx context.Context, req *dto.ActivatePasswordRequest) error {
	token := strings.TrimSpace(req.Token)
	if token == "" {
		return apperrors.NewValidationError("token", "Approval token is required")
	}

	if req.Password == "" {
		return apperrors.NewValidationError("password", "Admin password is required")
	}
	if res := validation.Password(req.Password); !res.Valid {
		return apperrors.NewValidationError("password", res.Message)
	}

	department, err := s.departmentRepo.GetByApprovalToken(ctx, token)
	if err != nil {
		if errors.Is(err, repositories.ErrDepartmentNotFound) {
			return apperrors.ErrInvalidApprovalToken
		}
		return fmt.Errorf("error looking up approval token: %w", err)
	}

	if !department.HasValidApprovalToken(time.Now()) {
		return apperrors.ErrInvalidApprovalToken
	}

	// A token only authorizes activation for an approved department.
	if department.Status != models.StatusApproved {
		return apperrors.ErrInvalidApprovalToken
	}

	storedHash := ""
	if department.AdminPassword != nil {
		storedHash = *department.AdminPassword
	}

	hash, err := auth.HashPasswordIfChanged(storedHash, req.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.departmentRepo.SetAdminPassword(ctx, department.ID, hash); err != nil {
		return fmt.Errorf("error storing admin password: %w", err)
	}

	s.logger.Info().
		Str("departmentId", department.ID.String()).
		Msg("Admin password activated")

	return nil
}

func (s *ApprovalService) getDepartment(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrDepartmentNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}
	return department, nil
}
