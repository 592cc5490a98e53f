package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bikeworks/assembly-tracker/internal/core/ports"
)

// SessionHandler closes sessions and moves open sessions between bikes.
type SessionHandler struct {
	service ports.SessionService
}

func NewSessionHandler(service ports.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// Logout closes the employee's newest open assembly record.
//
// @Summary      Employee logout
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      logoutRequest  true  "Employee to log out"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	var req logoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	employeeID := int64(req.EmployeeID)
	if err := authorizeEmployee(c, employeeID); err != nil {
		return err
	}

	if err := h.service.Logout(c.Request().Context(), employeeID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Logout successful."})
}

// ReassignBike moves every open assembly record of the employee to another bike.
//
// @Summary      Reassign bike
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reassignBikeRequest  true  "New bike and employee"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/postbikeId [post]
func (h *SessionHandler) ReassignBike(c echo.Context) error {
	var req reassignBikeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	employeeID := int64(req.EmployeeID)
	if err := authorizeEmployee(c, employeeID); err != nil {
		return err
	}

	if err := h.service.ReassignBike(c.Request().Context(), employeeID, string(req.BikeID)); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "Bike ID updated successfully."})
}
