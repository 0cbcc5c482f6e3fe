package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adminpanel/rbac-directory/internal/core/domain"
	"github.com/adminpanel/rbac-directory/internal/core/ports"
)

// CatalogHandler serves the fixed permission catalog.
type CatalogHandler struct {
	catalog ports.PermissionProvider
}

func NewCatalogHandler(catalog ports.PermissionProvider) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type catalogResponse struct {
	Permissions []string                    `json:"permissions"`
	Categories  []domain.PermissionCategory `json:"categories"`
}

// List returns the ordered permission identifiers and their presentation
// groupings.
//
// @Summary      List permissions
// @Tags         permissions
// @Produce      json
// @Success      200  {object}  catalogResponse
// @Router       /permissions [get]
func (h *CatalogHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, catalogResponse{
		Permissions: h.catalog.Permissions(),
		Categories:  h.catalog.Categories(),
	})
}
