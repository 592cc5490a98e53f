package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bikeworks/assembly-tracker/internal/core/domain"
)

func TestHTTPErrorHandler_Mapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"missing fields", domain.ErrMissingLoginFields, http.StatusBadRequest, "Username, password, and bikeId are required."},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Username or password is incorrect."},
		{"throttled", domain.ErrTooManyAttempts, http.StatusTooManyRequests, "Too many failed login attempts. Try again later."},
		{"no session", domain.ErrSessionNotFound, http.StatusNotFound, "No active login session found."},
		{"already open", domain.ErrSessionAlreadyOpen, http.StatusConflict, "An active login session already exists."},
		{"no production", domain.ErrNoProduction, http.StatusNotFound, "No logged duration found for the specified period."},
		{"wrapped sentinel", fmt.Errorf("close: %w", domain.ErrSessionNotFound), http.StatusNotFound, "No active login session found."},
		{"persistence", domain.NewPersistenceError("Failed to logout.", errors.New("conn reset")), http.StatusInternalServerError, "Failed to logout."},
		{"echo error", echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest, "invalid payload"},
		{"unknown", errors.New("kaboom"), http.StatusInternalServerError, "internal server error"},
	}

	h := NewHTTPErrorHandler(zerolog.Nop())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/logout", nil), rec)

			h(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Error != tc.msg {
				t.Fatalf("expected %q, got %q", tc.msg, resp.Error)
			}
		})
	}
}

func TestHTTPErrorHandler_InvalidDateKeepsDetail(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := fmt.Errorf("%w: %q must be formatted as YYYY-MM-DD", domain.ErrInvalidDate, "2024-13-01")
	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_PersistenceCauseNotLeaked(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := domain.NewPersistenceError("Failed to fetch bikes", errors.New("password authentication failed for user app"))
	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Error != "Failed to fetch bikes" {
		t.Fatalf("cause leaked: %q", resp.Error)
	}
}
