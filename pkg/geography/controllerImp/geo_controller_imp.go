package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"krishi/pkg/geography"
)

type GeoCtrl struct{ catalog *geography.Catalog }

func New(catalog *geography.Catalog) *GeoCtrl { return &GeoCtrl{catalog} }

// Geography handles GET /geography. It cannot fail; the catalog always has
// at least its built-in table.
func (h *GeoCtrl) Geography(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"success":        true,
		"states":         h.catalog.States(),
		"stateDistricts": h.catalog.StateDistricts(),
	})
}

// Districts handles GET /geography/districts?state=Punjab.
func (h *GeoCtrl) Districts(c echo.Context) error {
	state := c.QueryParam("state")
	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"state":     state,
		"districts": h.catalog.Districts(state),
	})
}
