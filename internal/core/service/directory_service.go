package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/adminpanel/rbac-directory/internal/core/domain"
	"github.com/adminpanel/rbac-directory/internal/core/ports"
)

// DirectoryService implements ports.DirectoryService on top of the store.
// It runs the validation engine, enforces catalog membership for role
// permissions, and leaves notification to the caller.
type DirectoryService struct {
	store   ports.DirectoryStore
	catalog ports.PermissionProvider
	log     zerolog.Logger
}

func NewDirectoryService(store ports.DirectoryStore, catalog ports.PermissionProvider, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{store: store, catalog: catalog, log: log}
}

// ListUsers returns the users matching the status filter ("all" or empty
// returns everyone).
func (s *DirectoryService) ListUsers(_ context.Context, statusFilter string) []domain.User {
	return domain.FilterUsersByStatus(s.store.Users(), statusFilter)
}

// CreateUser validates the full draft and commits it to the store.
func (s *DirectoryService) CreateUser(_ context.Context, draft domain.UserDraft) (domain.User, error) {
	if errs := domain.ValidateUserDraft(draft); !errs.Valid() {
		return domain.User{}, &domain.ValidationError{Fields: errs}
	}

	user, err := s.store.AddUser(draft)
	if err != nil {
		s.log.Warn().Err(err).Str("email", draft.Email).Msg("user create rejected")
		return domain.User{}, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user created")
	return user, nil
}

// UpdateUser validates only the fields the patch changes, then applies the
// patch atomically. The id is immutable.
func (s *DirectoryService) UpdateUser(_ context.Context, id string, patch domain.UserPatch) (domain.User, error) {
	original, err := s.store.GetUser(id)
	if err != nil {
		return domain.User{}, err
	}

	if errs := domain.ValidateUserPatch(patch, original); !errs.Valid() {
		return domain.User{}, &domain.ValidationError{Fields: errs}
	}

	user, err := s.store.UpdateUser(id, patch)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", id).Msg("user update rejected")
		return domain.User{}, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user updated")
	return user, nil
}

// DeleteUser removes the user if present. Missing ids are a no-op.
func (s *DirectoryService) DeleteUser(_ context.Context, id string) bool {
	removed := s.store.DeleteUser(id)
	s.log.Info().Str("user_id", id).Bool("removed", removed).Msg("user delete")
	return removed
}

// ListRoles returns the ranked roles granting every required permission.
func (s *DirectoryService) ListRoles(_ context.Context, requiredPermissions []string) []domain.Role {
	return domain.FilterRolesByPermissions(s.store.Roles(), requiredPermissions)
}

// CreateRole validates the draft, checks every permission against the
// catalog, and commits. The store re-ranks the collection on success.
func (s *DirectoryService) CreateRole(_ context.Context, draft domain.RoleDraft) (domain.Role, error) {
	errs := domain.ValidateRoleDraft(draft)
	if errs.Valid() {
		if unknown := s.unknownPermission(draft.Permissions); unknown != "" {
			errs["permissions"] = fmt.Sprintf("Unknown permission %q.", unknown)
		}
	}
	if !errs.Valid() {
		return domain.Role{}, &domain.ValidationError{Fields: errs}
	}

	role, err := s.store.AddRole(draft)
	if err != nil {
		s.log.Warn().Err(err).Str("name", draft.Name).Msg("role create rejected")
		return domain.Role{}, err
	}

	s.log.Info().Str("role_id", role.ID).Int("permissions", len(role.Permissions)).Msg("role created")
	return role, nil
}

// UpdateRole applies a changed-fields patch to an existing role.
func (s *DirectoryService) UpdateRole(_ context.Context, id string, patch domain.RolePatch) (domain.Role, error) {
	original, err := s.store.GetRole(id)
	if err != nil {
		return domain.Role{}, err
	}

	errs := domain.ValidateRolePatch(patch, original)
	if errs.Valid() && patch.Permissions != nil {
		if unknown := s.unknownPermission(patch.Permissions); unknown != "" {
			errs["permissions"] = fmt.Sprintf("Unknown permission %q.", unknown)
		}
	}
	if !errs.Valid() {
		return domain.Role{}, &domain.ValidationError{Fields: errs}
	}

	role, err := s.store.UpdateRole(id, patch)
	if err != nil {
		s.log.Warn().Err(err).Str("role_id", id).Msg("role update rejected")
		return domain.Role{}, err
	}

	s.log.Info().Str("role_id", role.ID).Msg("role updated")
	return role, nil
}

// DeleteRole removes the role if present. Users referencing the role by name
// keep their dangling reference untouched.
func (s *DirectoryService) DeleteRole(_ context.Context, id string) bool {
	removed := s.store.DeleteRole(id)
	s.log.Info().Str("role_id", id).Bool("removed", removed).Msg("role delete")
	return removed
}

// Stats computes the dashboard summary from current state.
func (s *DirectoryService) Stats(_ context.Context) ports.DirectoryStats {
	users := s.store.Users()
	active := 0
	for _, u := range users {
		if u.Status == domain.StatusActive {
			active++
		}
	}
	return ports.DirectoryStats{
		TotalUsers:       len(users),
		TotalRoles:       len(s.store.Roles()),
		ActiveUsers:      active,
		TotalPermissions: s.catalog.Size(),
	}
}

func (s *DirectoryService) unknownPermission(perms []string) string {
	for _, p := range perms {
		if !s.catalog.Contains(p) {
			return p
		}
	}
	return ""
}
