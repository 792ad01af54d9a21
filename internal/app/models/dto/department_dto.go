package dto

import "time"

// RegisterDepartmentRequest is the registration payload. Fields are
// validated fail-fast by the registration service, not by binding tags,
// so the first failing field is reported exactly.
type RegisterDepartmentRequest struct {
	DepartmentName string `json:"departmentName"`
	University     string `json:"university"`
	Email          string `json:"email"`
	Admin          string `json:"admin"`
}

// ActivatePasswordRequest sets the admin password using an approval token.
type ActivatePasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// DepartmentSummary is the projection returned after registration.
type DepartmentSummary struct {
	ID             string `json:"id"`
	DepartmentName string `json:"departmentName"`
	University     string `json:"university"`
	Email          string `json:"email"`
	Admin          string `json:"admin"`
	Status         string `json:"status"`
}

// StatusView is the public status projection.
type StatusView struct {
	DepartmentName string `json:"departmentName"`
	University     string `json:"university"`
	Status         string `json:"status"`
}

// ApprovalView is returned when a pending department is approved. The
// approval token authorizes the later password activation.
type ApprovalView struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"`
	ApprovalToken string    `json:"approvalToken"`
	TokenExpires  time.Time `json:"tokenExpires"`
}
