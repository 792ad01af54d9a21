// Package validation holds the pure field validators for department
// registration. All validators operate on already-normalized input
// (trimmed, email lower-cased) and report a field-tagged result instead
// of returning errors, so services can compose them fail-fast.
package validation

import (
	"fmt"
	"strings"
	"unicode"
)

// Field length bounds
const (
	DepartmentNameMinLength = 2
	DepartmentNameMaxLength = 100

	UniversityMinLength = 2
	UniversityMaxLength = 150

	ContactPersonMinLength = 2
	ContactPersonMaxLength = 100

	PasswordMinLength = 6
	PasswordMaxLength = 100

	emailMinLength = 6
)

// Result is the outcome of a single field validation.
type Result struct {
	Valid   bool
	Field   string
	Message string
}

func pass() Result {
	return Result{Valid: true}
}

func fail(field, message string) Result {
	return Result{Field: field, Message: message}
}

// DepartmentName checks length and the allowed character set:
// letters, digits, space, hyphen, ampersand, period, parentheses.
func DepartmentName(name string) Result {
	const field = "departmentName"

	if name == "" {
		return fail(field, "Department name is required")
	}

	length := len([]rune(name))
	if length < DepartmentNameMinLength || length > DepartmentNameMaxLength {
		return fail(field, fmt.Sprintf("Department name must be between %d and %d characters",
			DepartmentNameMinLength, DepartmentNameMaxLength))
	}

	for _, char := range name {
		if unicode.IsLetter(char) || unicode.IsDigit(char) {
			continue
		}
		switch char {
		case ' ', '-', '&', '.', '(', ')':
			continue
		}
		return fail(field, "Department name contains invalid characters")
	}

	return pass()
}

// University checks length only; university names are free text after trimming.
func University(name string) Result {
	const field = "university"

	if name == "" {
		return fail(field, "University name is required")
	}

	length := len([]rune(name))
	if length < UniversityMinLength || length > UniversityMaxLength {
		return fail(field, fmt.Sprintf("University name must be between %d and %d characters",
			UniversityMinLength, UniversityMaxLength))
	}

	return pass()
}

// ContactPerson checks length, the allowed character set
// (letters, space, hyphen, apostrophe, period) and that at
// least one letter is present.
func ContactPerson(name string) Result {
	const field = "contactPerson"

	if name == "" {
		return fail(field, "Contact person name is required")
	}

	length := len([]rune(name))
	if length < ContactPersonMinLength || length > ContactPersonMaxLength {
		return fail(field, fmt.Sprintf("Contact person name must be between %d and %d characters",
			ContactPersonMinLength, ContactPersonMaxLength))
	}

	hasLetter := false
	for _, char := range name {
		if unicode.IsLetter(char) {
			hasLetter = true
			continue
		}
		switch char {
		case ' ', '-', '\'', '.':
			continue
		}
		return fail(field, "Contact person name contains invalid characters")
	}
	if !hasLetter {
		return fail(field, "Contact person name must contain at least one letter")
	}

	return pass()
}

// Email is a structural check only, deliberately lenient: an "@" and a "."
// must be present, the "@" must come before the last "." and neither may sit
// at the edge it guards. Not full RFC validation.
func Email(email string) Result {
	const field = "email"

	if email == "" {
		return fail(field, "Email is required")
	}

	at := strings.Index(email, "@")
	lastDot := strings.LastIndex(email, ".")

	switch {
	case len(email) < emailMinLength,
		at < 0,
		lastDot < 0,
		at >= lastDot,
		at == 0,
		lastDot == len(email)-1:
		return fail(field, "Please enter a valid email address")
	}

	return pass()
}

// InstitutionalDomain requires the email to end with the configured suffix.
// Applied only at the registration boundary, not at the persistence layer.
func InstitutionalDomain(email, suffix string) Result {
	const field = "email"

	if !strings.HasSuffix(email, suffix) {
		return fail(field, fmt.Sprintf("Invalid email domain (only %s allowed)", suffix))
	}

	return pass()
}

// Password treats an empty value as valid: the admin password stays unset
// until the activation flow supplies one. A present value must be within
// the length bounds before hashing.
func Password(password string) Result {
	const field = "adminPassword"

	if password == "" {
		return pass()
	}

	length := len([]rune(password))
	if length < PasswordMinLength || length > PasswordMaxLength {
		return fail(field, fmt.Sprintf("Admin password must be between %d and %d characters",
			PasswordMinLength, PasswordMaxLength))
	}

	return pass()
}
