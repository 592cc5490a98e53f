package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/bikeworks/assembly-tracker/internal/api/middleware"
	"github.com/bikeworks/assembly-tracker/internal/core/domain"
)

type stubSessionService struct {
	logoutFn   func(ctx context.Context, employeeID int64) error
	reassignFn func(ctx context.Context, employeeID int64, bikeID string) error
}

func (s *stubSessionService) Logout(ctx context.Context, employeeID int64) error {
	return s.logoutFn(ctx, employeeID)
}

func (s *stubSessionService) ReassignBike(ctx context.Context, employeeID int64, bikeID string) error {
	return s.reassignFn(ctx, employeeID, bikeID)
}

func TestSessionHandler_Logout_Success(t *testing.T) {
	stub := &stubSessionService{
		logoutFn: func(ctx context.Context, employeeID int64) error {
			if employeeID != 7 {
				t.Fatalf("unexpected employee %d", employeeID)
			}
			return nil
		},
	}

	c, rec := newTestContext(http.MethodPost, "/api/logout", `{"employeeId":7}`)
	if err := NewSessionHandler(stub).Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["message"] != "Logout successful." {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestSessionHandler_Logout_StringID(t *testing.T) {
	called := false
	stub := &stubSessionService{
		logoutFn: func(ctx context.Context, employeeID int64) error {
			called = employeeID == 12
			return nil
		},
	}

	c, _ := newTestContext(http.MethodPost, "/api/logout", `{"employeeId":"12"}`)
	if err := NewSessionHandler(stub).Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatal("expected logout for employee 12")
	}
}

func TestSessionHandler_Logout_Rejects(t *testing.T) {
	stub := &stubSessionService{
		logoutFn: func(ctx context.Context, employeeID int64) error {
			t.Fatal("service must not be called")
			return nil
		},
	}

	for _, body := range []string{`{}`, `{"employeeId":0}`, `{"employeeId":-3}`, `{"employeeId":"abc"}`} {
		c, _ := newTestContext(http.MethodPost, "/api/logout", body)
		err := NewSessionHandler(stub).Logout(c)
		if httpStatus(err) != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %v", body, err)
		}
	}
}

func TestSessionHandler_Logout_NotFound(t *testing.T) {
	stub := &stubSessionService{
		logoutFn: func(ctx context.Context, employeeID int64) error {
			return domain.ErrSessionNotFound
		},
	}

	c, _ := newTestContext(http.MethodPost, "/api/logout", `{"employeeId":7}`)
	if err := NewSessionHandler(stub).Logout(c); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionHandler_Logout_OtherEmployeeForbidden(t *testing.T) {
	stub := &stubSessionService{
		logoutFn: func(ctx context.Context, employeeID int64) error {
			t.Fatal("service must not be called")
			return nil
		},
	}

	c, _ := newTestContext(http.MethodPost, "/api/logout", `{"employeeId":8}`)
	c.Set(middleware.CtxEmployeeID, int64(7))
	c.Set(middleware.CtxRole, domain.RoleEmployee)

	if err := NewSessionHandler(stub).Logout(c); httpStatus(err) != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestSessionHandler_Logout_SupervisorMayCloseOthers(t *testing.T) {
	stub := &stubSessionService{
		logoutFn: func(ctx context.Context, employeeID int64) error { return nil },
	}

	c, rec := newTestContext(http.MethodPost, "/api/logout", `{"employeeId":8}`)
	c.Set(middleware.CtxEmployeeID, int64(1))
	c.Set(middleware.CtxRole, "supervisor")

	if err := NewSessionHandler(stub).Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSessionHandler_ReassignBike_Success(t *testing.T) {
	stub := &stubSessionService{
		reassignFn: func(ctx context.Context, employeeID int64, bikeID string) error {
			if employeeID != 7 || bikeID != "B2" {
				t.Fatalf("unexpected args %d %q", employeeID, bikeID)
			}
			return nil
		},
	}

	c, rec := newTestContext(http.MethodPost, "/api/postbikeId", `{"bikeId":"B2","employeeId":7}`)
	if err := NewSessionHandler(stub).ReassignBike(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["message"] != "Bike ID updated successfully." {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestSessionHandler_ReassignBike_MissingFields(t *testing.T) {
	stub := &stubSessionService{
		reassignFn: func(ctx context.Context, employeeID int64, bikeID string) error {
			t.Fatal("service must not be called")
			return nil
		},
	}

	for _, body := range []string{`{"employeeId":7}`, `{"bikeId":"B2"}`, `{"bikeId":"  ","employeeId":7}`} {
		c, _ := newTestContext(http.MethodPost, "/api/postbikeId", body)
		if err := NewSessionHandler(stub).ReassignBike(c); httpStatus(err) != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %v", body, err)
		}
	}
}

func TestSessionHandler_ReassignBike_StoreFailure(t *testing.T) {
	storeErr := domain.NewPersistenceError("Failed to update bike ID.", errors.New("boom"))
	stub := &stubSessionService{
		reassignFn: func(ctx context.Context, employeeID int64, bikeID string) error {
			return storeErr
		},
	}

	c, _ := newTestContext(http.MethodPost, "/api/postbikeId", `{"bikeId":3,"employeeId":7}`)
	if err := NewSessionHandler(stub).ReassignBike(c); !errors.Is(err, storeErr) {
		t.Fatalf("expected persistence error, got %v", err)
	}
}
