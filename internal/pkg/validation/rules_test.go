package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDepartmentName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
	}{
		{"valid simple", "Computer Science", true},
		{"valid with punctuation", "Math & Stats (Dept.)", true},
		{"valid with digits", "Lab 42", true},
		{"empty", "", false},
		{"too short", "A", false},
		{"too long", strings.Repeat("a", DepartmentNameMaxLength+1), false},
		{"max length ok", strings.Repeat("a", DepartmentNameMaxLength), true},
		{"invalid character", "CS@Dept", false},
		{"invalid character underscore", "CS_Dept", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := DepartmentName(tt.input)
			assert.Equal(t, tt.wantValid, res.Valid)
			if !tt.wantValid {
				assert.Equal(t, "departmentName", res.Field)
				assert.NotEmpty(t, res.Message)
			}
		})
	}
}

func TestDepartmentNameRequiredMessage(t *testing.T) {
	res := DepartmentName("")
	assert.Equal(t, "Department name is required", res.Message)
}

func TestUniversity(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
	}{
		{"valid", "State University", true},
		{"free text allowed", "Universität München / TUM", true},
		{"empty", "", false},
		{"too short", "U", false},
		{"too long", strings.Repeat("u", UniversityMaxLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := University(tt.input)
			assert.Equal(t, tt.wantValid, res.Valid)
			if !tt.wantValid {
				assert.Equal(t, "university", res.Field)
			}
		})
	}
}

func TestContactPerson(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
	}{
		{"valid", "Jane Doe", true},
		{"valid with apostrophe", "O'Brien", true},
		{"valid with hyphen and period", "J.-P. Martin", true},
		{"empty", "", false},
		{"too short", "J", false},
		{"too long", strings.Repeat("a", ContactPersonMaxLength+1), false},
		{"digits rejected", "Agent 47", false},
		{"no letter at all", "-- ..", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ContactPerson(tt.input)
			assert.Equal(t, tt.wantValid, res.Valid)
			if !tt.wantValid {
				assert.Equal(t, "contactPerson", res.Field)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
	}{
		{"valid", "cs@university.edu", true},
		{"valid with subdomain", "a@b.cd.ef", true},
		{"empty", "", false},
		{"too short", "a@b.c", false},
		{"missing at", "university.edu", false},
		{"missing dot", "cs@university", false},
		{"at after last dot", "cs.dept@university", false},
		{"leading at", "@university.edu", false},
		{"trailing dot", "cs@university.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Email(tt.input)
			assert.Equal(t, tt.wantValid, res.Valid, "input %q", tt.input)
			if !tt.wantValid {
				assert.Equal(t, "email", res.Field)
			}
		})
	}
}

func TestEmailInvalidMessage(t *testing.T) {
	res := Email("not-an-email")
	assert.Equal(t, "Please enter a valid email address", res.Message)
}

func TestInstitutionalDomain(t *testing.T) {
	assert.True(t, InstitutionalDomain("cs@university.edu", "@university.edu").Valid)
	assert.True(t, InstitutionalDomain("cs@dept.university.edu", ".university.edu").Valid)

	res := InstitutionalDomain("cs@gmail.com", "@university.edu")
	assert.False(t, res.Valid)
	assert.Equal(t, "email", res.Field)
	assert.Equal(t, "Invalid email domain (only @university.edu allowed)", res.Message)
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
	}{
		{"empty is valid until activation", "", true},
		{"valid", "secret1", true},
		{"min length ok", strings.Repeat("p", PasswordMinLength), true},
		{"too short", "12345", false},
		{"too long", strings.Repeat("p", PasswordMaxLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Password(tt.input)
			assert.Equal(t, tt.wantValid, res.Valid)
			if !tt.wantValid {
				assert.Equal(t, "adminPassword", res.Field)
			}
		})
	}
}
