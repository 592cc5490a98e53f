package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bikeworks/assembly-tracker/internal/core/ports"
)

// CatalogHandler exposes the raw employee, bike and assembly record listings.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// Employees lists every employee. Password hashes are never serialised.
//
// @Summary      List employees
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Employee
// @Failure      500  {object}  map[string]string
// @Router       /api/employees [get]
func (h *CatalogHandler) Employees(c echo.Context) error {
	employees, err := h.service.Employees(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// Bikes lists every bike.
//
// @Summary      List bikes
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Bike
// @Failure      500  {object}  map[string]string
// @Router       /api/bikes [get]
func (h *CatalogHandler) Bikes(c echo.Context) error {
	bikes, err := h.service.Bikes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bikes)
}

// AssemblyRecords lists every assembly record.
//
// @Summary      List assembly records
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.AssemblyRecord
// @Failure      500  {object}  map[string]string
// @Router       /api/assemble [get]
func (h *CatalogHandler) AssemblyRecords(c echo.Context) error {
	records, err := h.service.AssemblyRecords(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}
