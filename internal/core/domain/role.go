package domain

import "time"

// Role is a named, non-empty set of permissions drawn from the catalog.
type Role struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasPermission reports whether the role grants the given permission.
func (r Role) HasPermission(perm string) bool {
	for _, p := range r.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the role, permissions slice included.
func (r Role) Clone() Role {
	out := r
	out.Permissions = make([]string, len(r.Permissions))
	copy(out.Permissions, r.Permissions)
	return out
}
