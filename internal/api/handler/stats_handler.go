package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adminpanel/rbac-directory/internal/core/ports"
)

// StatsHandler serves the dashboard summary figures.
type StatsHandler struct {
	service ports.DirectoryService
}

func NewStatsHandler(service ports.DirectoryService) *StatsHandler {
	return &StatsHandler{service: service}
}

type statsResponse struct {
	TotalUsers       int `json:"total_users"`
	TotalRoles       int `json:"total_roles"`
	ActiveUsers      int `json:"active_users"`
	TotalPermissions int `json:"total_permissions"`
}

// Summary returns current directory totals.
//
// @Summary      Directory summary
// @Tags         stats
// @Produce      json
// @Success      200  {object}  statsResponse
// @Router       /stats [get]
func (h *StatsHandler) Summary(c echo.Context) error {
	stats := h.service.Stats(c.Request().Context())
	return c.JSON(http.StatusOK, statsResponse{
		TotalUsers:       stats.TotalUsers,
		TotalRoles:       stats.TotalRoles,
		ActiveUsers:      stats.ActiveUsers,
		TotalPermissions: stats.TotalPermissions,
	})
}
