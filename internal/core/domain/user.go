package domain

import "time"

// Status represents the lifecycle state of a directory user.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// StatusFilterAll is the status filter value that matches every user.
const StatusFilterAll = "all"

// IsValid reports whether s is one of the recognised statuses.
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// User models a member of the directory. Role references a Role by name; the
// reference is deliberately unchecked, so deleting a role may leave it
// dangling without affecting the user record.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
