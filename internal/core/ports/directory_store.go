package ports

import (
	"github.com/adminpanel/rbac-directory/internal/core/domain"
)

// DirectoryStore owns the canonical User and Role collections. Every
// mutation either fully applies or fully rejects; readers always see
// committed state. The role collection is kept in ranked order.
type DirectoryStore interface {
	Users() []domain.User
	Roles() []domain.Role
	GetUser(id string) (domain.User, error)
	GetRole(id string) (domain.Role, error)

	// IsDuplicateUser reports whether a user other than excludeID already
	// holds the given name or email (case-insensitive on both).
	IsDuplicateUser(name, email, excludeID string) bool
	// IsDuplicateRole reports whether a role other than excludeID already
	// holds the given name (case-insensitive).
	IsDuplicateRole(name, excludeID string) bool

	AddUser(draft domain.UserDraft) (domain.User, error)
	UpdateUser(id string, patch domain.UserPatch) (domain.User, error)
	// DeleteUser removes the record if present and reports whether removal
	// occurred. Deleting a missing id is an idempotent no-op, never an error.
	DeleteUser(id string) bool

	AddRole(draft domain.RoleDraft) (domain.Role, error)
	UpdateRole(id string, patch domain.RolePatch) (domain.Role, error)
	// DeleteRole never cascades to users referencing the role by name.
	DeleteRole(id string) bool
}

// PermissionProvider supplies the fixed permission catalog and its
// presentation groupings.
type PermissionProvider interface {
	Permissions() []string
	Categories() []domain.PermissionCategory
	Contains(perm string) bool
	Size() int
}
