package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bikeworks/assembly-tracker/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps domain errors
// to status codes and renders {"error": "<message>"}. Store failures surface
// only their client-facing message; the cause is logged.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrMissingLoginFields):
		return http.StatusBadRequest, "Username, password, and bikeId are required."
	case errors.Is(err, domain.ErrInvalidDate):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Username or password is incorrect."
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "Too many failed login attempts. Try again later."
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, "No active login session found."
	case errors.Is(err, domain.ErrNoProduction):
		return http.StatusNotFound, "No logged duration found for the specified period."
	case errors.Is(err, domain.ErrSessionAlreadyOpen):
		return http.StatusConflict, "An active login session already exists."
	}

	var pe *domain.PersistenceError
	if errors.As(err, &pe) {
		log.Error().
			Err(pe.Err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg(pe.Message)
		return http.StatusInternalServerError, pe.Message
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
