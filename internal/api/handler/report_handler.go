package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bikeworks/assembly-tracker/internal/core/ports"
)

// ReportHandler serves the production-time reports.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// ProductionByRange sums closed employee sessions per bike between two dates.
//
// @Summary      Production time per bike over a date range
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        fromDate  query     string  true  "Start date (YYYY-MM-DD)"
// @Param        toDate    query     string  true  "End date (YYYY-MM-DD)"
// @Success      200       {array}   domain.BikeProduction
// @Failure      400       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Failure      500       {object}  map[string]string
// @Router       /api/employee/production [get]
func (h *ReportHandler) ProductionByRange(c echo.Context) error {
	var q productionRangeQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	rows, err := h.service.ProductionByRange(c.Request().Context(), ports.ProductionRangeInput{
		FromDate: q.FromDate,
		ToDate:   q.ToDate,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, rows)
}

// ProductionByDate sums employee sessions per bike for sessions started on one day.
// An empty day yields an empty list rather than 404.
//
// @Summary      Production time per bike on a single day
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        specificDate  query     string  true  "Day (YYYY-MM-DD)"
// @Success      200           {array}   domain.BikeProduction
// @Failure      400           {object}  map[string]string
// @Failure      500           {object}  map[string]string
// @Router       /api/employee/specificDateProduction [get]
func (h *ReportHandler) ProductionByDate(c echo.Context) error {
	var q productionDateQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	rows, err := h.service.ProductionByDate(c.Request().Context(), q.SpecificDate)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, rows)
}
