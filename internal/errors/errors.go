// Package errors provides domain-specific error types and sentinel errors
// for improved error handling across the application.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common scenarios.
// Use errors.Is() to check these errors in your code.
var (
	// ErrUnknownDepartment indicates the department id is not in the catalog.
	ErrUnknownDepartment = errors.New("unknown department")

	// ErrUnknownSemester indicates the semester is not listed for the department.
	ErrUnknownSemester = errors.New("unknown semester")

	// ErrUnavailable indicates a listed semester whose courses are not published yet.
	ErrUnavailable = errors.New("semester not yet available")

	// ErrUnknownCourse indicates a course reference that matches nothing in the active slice.
	ErrUnknownCourse = errors.New("unknown course")

	// ErrAmbiguousCourse indicates a course reference that matches more than one course.
	ErrAmbiguousCourse = errors.New("ambiguous course")

	// ErrUnknownGrade indicates a grade symbol outside the grade point table.
	ErrUnknownGrade = errors.New("unknown grade symbol")

	// ErrNoSelection indicates an operation that needs a department and semester first.
	ErrNoSelection = errors.New("no department or semester selected")

	// ErrIncomplete indicates the compute action is gated on missing grades.
	ErrIncomplete = errors.New("grades incomplete")

	// ErrNoResult indicates no credit-bearing course contributed to the average.
	ErrNoResult = errors.New("no result")

	// ErrInvalidInput indicates user provided invalid input.
	ErrInvalidInput = errors.New("invalid input")
)

// IsUnknownDepartment reports whether err is or wraps ErrUnknownDepartment.
func IsUnknownDepartment(err error) bool { return errors.Is(err, ErrUnknownDepartment) }

// IsUnknownSemester reports whether err is or wraps ErrUnknownSemester.
func IsUnknownSemester(err error) bool { return errors.Is(err, ErrUnknownSemester) }

// IsUnavailable reports whether err is or wraps ErrUnavailable.
func IsUnavailable(err error) bool { return errors.Is(err, ErrUnavailable) }

// IsIncomplete reports whether err is or wraps ErrIncomplete.
func IsIncomplete(err error) bool { return errors.Is(err, ErrIncomplete) }

// IsInvalidInput reports whether err is or wraps ErrInvalidInput.
func IsInvalidInput(err error) bool { return errors.Is(err, ErrInvalidInput) }

// ValidationError represents input validation failures.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// Unwrap returns the sentinel behind the failure, defaulting to ErrInvalidInput.
func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewValidationErrorFor creates a validation error that also matches the given sentinel.
func NewValidationErrorFor(sentinel error, field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     sentinel,
	}
}

// IncompleteError lists the courses still waiting for a grade.
type IncompleteError struct {
	Missing []string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("grades incomplete: %d missing (%s)", len(e.Missing), strings.Join(e.Missing, ", "))
}

func (e *IncompleteError) Unwrap() error {
	return ErrIncomplete
}

// NewIncompleteError creates a new incomplete error.
func NewIncompleteError(missing []string) *IncompleteError {
	return &IncompleteError{Missing: missing}
}
