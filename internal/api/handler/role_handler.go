package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/adminpanel/rbac-directory/internal/api/metrics"
	"github.com/adminpanel/rbac-directory/internal/core/domain"
	"github.com/adminpanel/rbac-directory/internal/core/ports"
)

// RoleHandler handles HTTP requests for role catalog operations.
type RoleHandler struct {
	service ports.DirectoryService
	notify  ports.Notifier
}

func NewRoleHandler(service ports.DirectoryService, notify ports.Notifier) *RoleHandler {
	return &RoleHandler{service: service, notify: notify}
}

type createRoleRequest struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

type updateRoleRequest struct {
	Name        *string  `json:"name"`
	Permissions []string `json:"permissions"`
}

type listRolesResponse struct {
	Items []domain.Role `json:"items"`
	Total int           `json:"total"`
}

// List returns the ranked roles, optionally narrowed to those granting every
// permission in the comma-separated filter.
//
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Param        permissions  query     string  false  "Comma-separated required permissions"
// @Success      200          {object}  listRolesResponse
// @Router       /roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	var required []string
	if raw := c.QueryParam("permissions"); raw != "" {
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				required = append(required, p)
			}
		}
	}

	roles := h.service.ListRoles(c.Request().Context(), required)
	if roles == nil {
		roles = []domain.Role{}
	}
	return c.JSON(http.StatusOK, listRolesResponse{Items: roles, Total: len(roles)})
}

// Create adds a role to the catalog.
//
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        body  body      createRoleRequest  true  "Role details"
// @Success      201   {object}  domain.Role
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req createRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	role, err := h.service.CreateRole(c.Request().Context(), domain.RoleDraft{
		Name:        req.Name,
		Permissions: req.Permissions,
	})
	if err != nil {
		metrics.MutationsTotal.WithLabelValues("role", "create", mutationResult(err)).Inc()
		h.notify.Notify(ports.NotifyError, "Error", roleErrorMessage(err))
		return err
	}

	metrics.MutationsTotal.WithLabelValues("role", "create", "success").Inc()
	h.notify.Notify(ports.NotifySuccess, "Success", "Role created successfully.")
	return c.JSON(http.StatusCreated, role)
}

// Update applies a changed-fields patch to a role.
//
// @Summary      Update a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Role id"
// @Param        body  body      updateRoleRequest  true  "Changed fields only"
// @Success      200   {object}  domain.Role
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /roles/{id} [put]
func (h *RoleHandler) Update(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	role, err := h.service.UpdateRole(c.Request().Context(), c.Param("id"), domain.RolePatch{
		Name:        req.Name,
		Permissions: req.Permissions,
	})
	if err != nil {
		metrics.MutationsTotal.WithLabelValues("role", "update", mutationResult(err)).Inc()
		h.notify.Notify(ports.NotifyError, "Error", roleErrorMessage(err))
		return err
	}

	metrics.MutationsTotal.WithLabelValues("role", "update", "success").Inc()
	h.notify.Notify(ports.NotifySuccess, "Success", "Role updated successfully.")
	return c.JSON(http.StatusOK, role)
}

// Delete removes a role. Users referencing it by name keep their dangling
// reference; nothing cascades.
//
// @Summary      Delete a role
// @Tags         roles
// @Param        id  path  string  true  "Role id"
// @Success      204
// @Router       /roles/{id} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	h.service.DeleteRole(c.Request().Context(), c.Param("id"))

	metrics.MutationsTotal.WithLabelValues("role", "delete", "success").Inc()
	h.notify.Notify(ports.NotifySuccess, "Success", "Role deleted successfully.")
	return c.NoContent(http.StatusNoContent)
}

func roleErrorMessage(err error) string {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return "Please fix the highlighted fields."
	case errors.Is(err, domain.ErrDuplicateRole):
		return "A role with this name already exists."
	case errors.Is(err, domain.ErrRoleNotFound):
		return "Role not found."
	default:
		return "Failed to save role."
	}
}
