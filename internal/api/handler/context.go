package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bikeworks/assembly-tracker/internal/api/middleware"
	"github.com/bikeworks/assembly-tracker/internal/core/domain"
)

// authorizeEmployee stops an authenticated line employee from acting on
// another employee's session. Requests without claims (auth disabled) and
// non-employee roles pass through.
func authorizeEmployee(c echo.Context, employeeID int64) error {
	callerID, ok := c.Get(middleware.CtxEmployeeID).(int64)
	if !ok {
		return nil
	}
	role, _ := c.Get(middleware.CtxRole).(string)
	if role == domain.RoleEmployee && callerID != employeeID {
		return echo.NewHTTPError(http.StatusForbidden, "cannot act on another employee's session")
	}
	return nil
}
