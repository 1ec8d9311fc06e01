package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors shared by every record type.
var (
	// ErrNotFound indicates the identifier does not resolve to a record.
	// HTTP Status: 404 Not Found
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized indicates a missing, invalid, expired or revoked caller credential.
	// HTTP Status: 401 Unauthorized
	ErrUnauthorized = errors.New("authentication required")

	// ErrForbidden indicates an authenticated caller acting on a record outside its scope.
	// HTTP Status: 403 Forbidden
	ErrForbidden = errors.New("access to this record is not allowed")

	// ErrInvalidCredentials indicates a login attempt with an unknown email or wrong password.
	// HTTP Status: 401 Unauthorized
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError carries one reason per offending field.
// HTTP Status: 400 Bad Request
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

// Add records a reason for field. The first reason for a field wins.
func (e *ValidationError) Add(field, reason string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = reason
	}
}

// Empty reports whether no field has been recorded.
func (e *ValidationError) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

// OrNil returns e as an error, or nil when nothing was recorded.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ConstraintViolation reports a uniqueness conflict on Field.
// HTTP Status: 409 Conflict
type ConstraintViolation struct {
	Entity string
	Field  string
}

func (e *ConstraintViolation) Error() string {
	return fmt.Sprintf("%s with this %s already exists", e.Entity, e.Field)
}
