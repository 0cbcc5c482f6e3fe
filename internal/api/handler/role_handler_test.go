package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/adminpanel/rbac-directory/internal/core/domain"
	"github.com/adminpanel/rbac-directory/internal/core/ports"
	"github.com/adminpanel/rbac-directory/internal/core/service"
	"github.com/adminpanel/rbac-directory/internal/infrastructure/memory"
)

func newRoleHandler() (*RoleHandler, *stubNotifier, ports.DirectoryService) {
	svc := service.NewDirectoryService(memory.NewStore(), domain.DefaultCatalog(), zerolog.Nop())
	notifier := &stubNotifier{}
	return NewRoleHandler(svc, notifier), notifier, svc
}

func TestRoleHandler_CreateAndList(t *testing.T) {
	h, notifier, _ := newRoleHandler()

	c, rec := jsonContext(t, http.MethodPost, "/roles",
		`{"name":"Editor","permissions":["view_content","edit_content"]}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if notifier.successes != 1 {
		t.Fatalf("expected one success notification, got %+v", notifier)
	}

	c, rec = jsonContext(t, http.MethodGet, "/roles", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List: %v", err)
	}
	var resp listRolesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 1 || resp.Items[0].Name != "Editor" {
		t.Fatalf("unexpected list: %+v", resp)
	}
}

func TestRoleHandler_ListFiltersBySupersetOfPermissions(t *testing.T) {
	h, _, svc := newRoleHandler()
	ctx := context.Background()
	seed := []domain.RoleDraft{
		{Name: "Viewer", Permissions: []string{"view_content"}},
		{Name: "Editor", Permissions: []string{"view_content", "edit_content"}},
	}
	for _, d := range seed {
		if _, err := svc.CreateRole(ctx, d); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	c, rec := jsonContext(t, http.MethodGet, "/roles?permissions=view_content,edit_content", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List: %v", err)
	}
	var resp listRolesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 1 || resp.Items[0].Name != "Editor" {
		t.Fatalf("expected Editor only, got %+v", resp)
	}
}

func TestRoleHandler_CreateUnknownPermission(t *testing.T) {
	h, notifier, _ := newRoleHandler()

	c, _ := jsonContext(t, http.MethodPost, "/roles",
		`{"name":"Hacker","permissions":["format_disk"]}`)

	err := h.Create(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Fields["permissions"] == "" {
		t.Fatalf("expected a permissions field error, got %v", ve.Fields)
	}
	if notifier.failures != 1 {
		t.Fatalf("expected one error notification, got %+v", notifier)
	}
}

func TestRoleHandler_DeleteLeavesUsersUntouched(t *testing.T) {
	h, notifier, svc := newRoleHandler()
	ctx := context.Background()

	role, err := svc.CreateRole(ctx, domain.RoleDraft{Name: "Editor", Permissions: []string{"view_content"}})
	if err != nil {
		t.Fatalf("seed role: %v", err)
	}
	if _, err := svc.CreateUser(ctx, domain.UserDraft{
		Name: "Jane", Email: "jane@x.com", Role: "Editor", Status: domain.StatusActive,
	}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	c, rec := jsonContext(t, http.MethodDelete, "/roles/"+role.ID, "")
	c.SetParamNames("id")
	c.SetParamValues(role.ID)
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if notifier.successes != 1 {
		t.Fatalf("expected one success notification, got %+v", notifier)
	}

	users := svc.ListUsers(ctx, domain.StatusFilterAll)
	if len(users) != 1 || users[0].Role != "Editor" {
		t.Fatalf("expected dangling role reference to survive, got %+v", users)
	}
}
