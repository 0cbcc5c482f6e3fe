package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/adminpanel/rbac-directory/internal/core/domain"
	"github.com/adminpanel/rbac-directory/internal/infrastructure/memory"
)

func newService() *DirectoryService {
	return NewDirectoryService(memory.NewStore(), domain.DefaultCatalog(), zerolog.Nop())
}

func mustCreateUser(t *testing.T, svc *DirectoryService, name, email string) domain.User {
	t.Helper()
	u, err := svc.CreateUser(context.Background(), domain.UserDraft{
		Name: name, Email: email, Role: "Editor", Status: domain.StatusActive,
	})
	if err != nil {
		t.Fatalf("CreateUser(%s): %v", name, err)
	}
	return u
}

func TestCreateUser_InvalidDraft(t *testing.T) {
	svc := newService()

	_, err := svc.CreateUser(context.Background(), domain.UserDraft{Email: "bad"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, field := range []string{"name", "email", "role", "status"} {
		if ve.Fields[field] == "" {
			t.Errorf("expected error for %q", field)
		}
	}
}

func TestCreateUser_Duplicate(t *testing.T) {
	svc := newService()
	mustCreateUser(t, svc, "Jane", "jane@x.com")

	_, err := svc.CreateUser(context.Background(), domain.UserDraft{
		Name: "Other", Email: "Jane@X.com", Role: "Editor", Status: domain.StatusActive,
	})
	if !errors.Is(err, domain.ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}
}

func TestUpdateUser_UnchangedEmailNotRechecked(t *testing.T) {
	svc := newService()
	u := mustCreateUser(t, svc, "Jane", "jane@x.com")

	// A patch that only renames must succeed without touching email rules.
	name := "Jane Doe"
	updated, err := svc.UpdateUser(context.Background(), u.ID, domain.UserPatch{Name: &name})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if updated.Name != "Jane Doe" || updated.Email != "jane@x.com" {
		t.Fatalf("unexpected merge result: %+v", updated)
	}
}

func TestUpdateUser_NotFoundIsTypedResult(t *testing.T) {
	svc := newService()
	name := "Ghost"
	_, err := svc.UpdateUser(context.Background(), "USR-00000099", domain.UserPatch{Name: &name})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCreateRole_UnknownPermissionRejected(t *testing.T) {
	svc := newService()

	_, err := svc.CreateRole(context.Background(), domain.RoleDraft{
		Name:        "Editor",
		Permissions: []string{domain.PermEditContent, "launch_rockets"},
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Fields["permissions"] == "" {
		t.Fatalf("expected permissions error, got %v", ve.Fields)
	}
}

func TestListRoles_RankedAndFiltered(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	mk := func(name string, perms ...string) {
		if _, err := svc.CreateRole(ctx, domain.RoleDraft{Name: name, Permissions: perms}); err != nil {
			t.Fatalf("CreateRole(%s): %v", name, err)
		}
	}
	mk("Viewer", domain.PermViewContent, domain.PermViewAnalytics)
	mk("Super Admin", domain.PermManageUsers, domain.PermManageRoles, domain.PermViewAnalytics, domain.PermManageSettings)
	mk("Editor", domain.PermCreateContent, domain.PermEditContent, domain.PermViewAnalytics)

	all := svc.ListRoles(ctx, nil)
	if len(all) != 3 || all[0].Name != "Super Admin" {
		t.Fatalf("expected ranked list starting with Super Admin, got %+v", all)
	}

	analytics := svc.ListRoles(ctx, []string{domain.PermViewAnalytics})
	if len(analytics) != 3 {
		t.Fatalf("expected all roles to grant view_analytics, got %d", len(analytics))
	}

	managers := svc.ListRoles(ctx, []string{domain.PermManageUsers, domain.PermManageRoles})
	if len(managers) != 1 || managers[0].Name != "Super Admin" {
		t.Fatalf("expected only Super Admin, got %+v", managers)
	}
}

func TestDeleteRole_DanglingReferenceAndStats(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	role, err := svc.CreateRole(ctx, domain.RoleDraft{Name: "Editor", Permissions: []string{domain.PermEditContent}})
	if err != nil {
		t.Fatalf("CreateRole: %v", err)
	}
	mustCreateUser(t, svc, "Jane", "jane@x.com")

	if !svc.DeleteRole(ctx, role.ID) {
		t.Fatalf("expected role removal")
	}
	// Deleting again is a no-op, not an error.
	if svc.DeleteRole(ctx, role.ID) {
		t.Fatalf("expected idempotent no-op")
	}

	users := svc.ListUsers(ctx, domain.StatusFilterAll)
	if len(users) != 1 || users[0].Role != "Editor" {
		t.Fatalf("user role reference mutated: %+v", users)
	}

	stats := svc.Stats(ctx)
	if stats.TotalUsers != 1 || stats.TotalRoles != 0 || stats.ActiveUsers != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.TotalPermissions != domain.DefaultCatalog().Size() {
		t.Fatalf("unexpected permission count: %d", stats.TotalPermissions)
	}
}
