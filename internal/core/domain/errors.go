package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrRoleNotFound = errors.New("role not found")
var ErrDuplicateUser = errors.New("a user with this name or email already exists")
var ErrDuplicateRole = errors.New("a role with this name already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// FieldErrors maps a field name to a human-readable message. An absent entry
// means the field is valid; an empty map means the whole draft is valid.
type FieldErrors map[string]string

// Valid reports whether no field failed validation.
func (fe FieldErrors) Valid() bool {
	return len(fe) == 0
}

// ValidationError carries the per-field rule violations of a rejected draft.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
