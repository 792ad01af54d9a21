// Package repositories implements data access for department records.
package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusreg/deptregistry/internal/app/models"
	"github.com/campusreg/deptregistry/internal/pkg/dberrors"
)

// Department error types
var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDuplicateEmail     = errors.New("department with this email already exists")
)

// contactEmailConstraint is the unique index that arbitrates concurrent
// registrations for the same email.
const contactEmailConstraint = "departments_contact_email_key"

const departmentColumns = `id, department_name, university, contact_email, contact_person,
		       status, admin_password, approval_token, token_expires, created_at`

// IDepartmentRepository is the storage contract the services depend on.
type IDepartmentRepository interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Department, error)
	GetByApprovalToken(ctx context.Context, token string) (*models.Department, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.DepartmentStatus, token *string, expires *time.Time) error
	SetAdminPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
	}
}

// Create inserts a new department record. A unique violation on the contact
// email (the loser of a registration race) is reported as ErrDuplicateEmail.
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO departments (id, department_name, university, contact_email, contact_person, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		department.ID,
		department.DepartmentName,
		department.University,
		department.ContactEmail,
		department.ContactPerson,
		department.Status,
		department.CreatedAt,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err, contactEmailConstraint) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("error creating department: %w", err)
	}

	return nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	query := `
		SELECT ` + departmentColumns + `
		FROM departments
		WHERE id = $1
	`

	department, err := r.scanDepartment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return department, nil
}

// GetByApprovalToken retrieves the department a password-set token belongs to.
func (r *DepartmentRepository) GetByApprovalToken(ctx context.Context, token string) (*models.Department, error) {
	sql, args, err := squirrel.Select(departmentColumns).
		From("departments").
		Where("approval_token = ?", token).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	department, err := r.scanDepartment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department by token: %w", err)
	}

	return department, nil
}

// EmailExists checks whether a department is already registered under the
// normalized contact email.
func (r *DepartmentRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM departments WHERE contact_email = $1)`,
		email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}

	return exists, nil
}

// UpdateStatus transitions a department's status and replaces its approval
// token. Passing a nil token clears any previously issued one.
func (r *DepartmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.DepartmentStatus, token *string, expires *time.Time) error {
	sql, args, err := squirrel.Update("departments").
		Set("status", status).
		Set("approval_token", token).
		Set("token_expires", expires).
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating department status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrDepartmentNotFound
	}

	return nil
}

// SetAdminPassword stores the hashed admin password and consumes the
// approval token that authorized it.
func (r *DepartmentRepository) SetAdminPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	sql, args, err := squirrel.Update("departments").
		Set("admin_password", passwordHash).
		Set("approval_token", nil).
		Set("token_expires", nil).
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error setting admin password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrDepartmentNotFound
	}

	return nil
}

func (r *DepartmentRepository) scanDepartment(row pgx.Row) (*models.Department, error) {
	var department models.Department
	err := row.Scan(
		&department.ID,
		&department.DepartmentName,
		&department.University,
		&department.ContactEmail,
		&department.ContactPerson,
		&department.Status,
		&department.AdminPassword,
		&department.ApprovalToken,
		&department.TokenExpires,
		&department.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &department, nil
}
