package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bikeworks/assembly-tracker/internal/core/domain"
)

type stubCatalogRepo struct {
	employees []domain.Employee
	bikes     []domain.Bike
	records   []domain.AssemblyRecord
	err       error
}

func (r *stubCatalogRepo) ListEmployees(context.Context) ([]domain.Employee, error) {
	return r.employees, r.err
}

func (r *stubCatalogRepo) ListBikes(context.Context) ([]domain.Bike, error) {
	return r.bikes, r.err
}

func (r *stubCatalogRepo) ListAssemblyRecords(context.Context) ([]domain.AssemblyRecord, error) {
	return r.records, r.err
}

func TestCatalogService_ListsRows(t *testing.T) {
	repo := &stubCatalogRepo{
		employees: []domain.Employee{{ID: 1, Username: "alice"}},
		bikes:     []domain.Bike{{ID: "B1"}, {ID: "B2"}},
	}
	svc := NewCatalogService(repo, zerolog.Nop())

	employees, err := svc.Employees(context.Background())
	if err != nil || len(employees) != 1 {
		t.Fatalf("unexpected employees: %v %v", employees, err)
	}
	bikes, err := svc.Bikes(context.Background())
	if err != nil || len(bikes) != 2 {
		t.Fatalf("unexpected bikes: %v %v", bikes, err)
	}
	records, err := svc.AssemblyRecords(context.Background())
	if err != nil || records == nil || len(records) != 0 {
		t.Fatalf("expected empty non-nil records, got %#v %v", records, err)
	}
}

func TestCatalogService_StoreError(t *testing.T) {
	svc := NewCatalogService(&stubCatalogRepo{err: errors.New("down")}, zerolog.Nop())

	var pe *domain.PersistenceError
	if _, err := svc.Employees(context.Background()); !errors.As(err, &pe) || pe.Message != "Failed to fetch employees" {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
	if _, err := svc.Bikes(context.Background()); !errors.As(err, &pe) || pe.Message != "Failed to fetch bikes" {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
	if _, err := svc.AssemblyRecords(context.Background()); !errors.As(err, &pe) || pe.Message != "Failed to fetch assembly records" {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
}
