package ports

import (
	"context"

	"github.com/adminpanel/rbac-directory/internal/core/domain"
)

// DirectoryStats is the dashboard summary view.
type DirectoryStats struct {
	TotalUsers       int
	TotalRoles       int
	ActiveUsers      int
	TotalPermissions int
}

// DirectoryService defines the administrator use-cases over the directory.
// Failures are returned as typed results (*domain.ValidationError,
// domain.ErrDuplicateUser, domain.ErrUserNotFound, ...), never panics; the
// caller maps each outcome to exactly one notification.
type DirectoryService interface {
	ListUsers(ctx context.Context, statusFilter string) []domain.User
	CreateUser(ctx context.Context, draft domain.UserDraft) (domain.User, error)
	UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error)
	DeleteUser(ctx context.Context, id string) bool

	ListRoles(ctx context.Context, requiredPermissions []string) []domain.Role
	CreateRole(ctx context.Context, draft domain.RoleDraft) (domain.Role, error)
	UpdateRole(ctx context.Context, id string, patch domain.RolePatch) (domain.Role, error)
	DeleteRole(ctx context.Context, id string) bool

	Stats(ctx context.Context) DirectoryStats
}
