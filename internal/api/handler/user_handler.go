package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adminpanel/rbac-directory/internal/api/metrics"
	"github.com/adminpanel/rbac-directory/internal/core/domain"
	"github.com/adminpanel/rbac-directory/internal/core/ports"
)

// UserHandler handles HTTP requests for user directory operations. Every
// mutation attempt produces exactly one notification: success or error.
type UserHandler struct {
	service ports.DirectoryService
	notify  ports.Notifier
}

func NewUserHandler(service ports.DirectoryService, notify ports.Notifier) *UserHandler {
	return &UserHandler{service: service, notify: notify}
}

type createUserRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type updateUserRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

type listUsersResponse struct {
	Items []domain.User `json:"items"`
	Total int           `json:"total"`
}

// List returns the users matching the optional status filter.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        status  query     string  false  "all, Active or Inactive"
// @Success      200     {object}  listUsersResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	status := c.QueryParam("status")
	if status == "" {
		status = domain.StatusFilterAll
	}

	users := h.service.ListUsers(c.Request().Context(), status)
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, listUsersResponse{Items: users, Total: len(users)})
}

// Create adds a user to the directory.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	draft := domain.UserDraft{
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Status: domain.Status(req.Status),
	}

	user, err := h.service.CreateUser(c.Request().Context(), draft)
	if err != nil {
		metrics.MutationsTotal.WithLabelValues("user", "create", mutationResult(err)).Inc()
		h.notify.Notify(ports.NotifyError, "Error", userErrorMessage(err))
		return err
	}

	metrics.MutationsTotal.WithLabelValues("user", "create", "success").Inc()
	h.notify.Notify(ports.NotifySuccess, "Success", "User added successfully.")
	return c.JSON(http.StatusCreated, user)
}

// Update applies a changed-fields patch to a user.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Changed fields only"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	patch := domain.UserPatch{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}
	if req.Status != nil {
		status := domain.Status(*req.Status)
		patch.Status = &status
	}

	user, err := h.service.UpdateUser(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		metrics.MutationsTotal.WithLabelValues("user", "update", mutationResult(err)).Inc()
		h.notify.Notify(ports.NotifyError, "Error", userErrorMessage(err))
		return err
	}

	metrics.MutationsTotal.WithLabelValues("user", "update", "success").Inc()
	h.notify.Notify(ports.NotifySuccess, "Success", "User updated successfully.")
	return c.JSON(http.StatusOK, user)
}

// Delete removes a user. Deleting a missing id is a no-op, never an error.
//
// @Summary      Delete a user
// @Tags         users
// @Param        id  path  string  true  "User id"
// @Success      204
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	h.service.DeleteUser(c.Request().Context(), c.Param("id"))

	metrics.MutationsTotal.WithLabelValues("user", "delete", "success").Inc()
	h.notify.Notify(ports.NotifySuccess, "Success", "User deleted successfully.")
	return c.NoContent(http.StatusNoContent)
}

// mutationResult maps a mutation error to its metric label.
func mutationResult(err error) string {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return "invalid"
	case errors.Is(err, domain.ErrDuplicateUser), errors.Is(err, domain.ErrDuplicateRole):
		return "duplicate"
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrRoleNotFound):
		return "not_found"
	default:
		return "error"
	}
}

func userErrorMessage(err error) string {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return "Please fix the highlighted fields."
	case errors.Is(err, domain.ErrDuplicateUser):
		return "A user with this name or email already exists."
	case errors.Is(err, domain.ErrUserNotFound):
		return "User not found."
	default:
		return "Failed to save user."
	}
}
