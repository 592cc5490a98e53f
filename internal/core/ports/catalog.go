package ports

import (
	"context"

	"github.com/bikeworks/assembly-tracker/internal/core/domain"
)

// CatalogRepository lists reference tables without filtering.
type CatalogRepository interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	ListBikes(ctx context.Context) ([]domain.Bike, error)
	ListAssemblyRecords(ctx context.Context) ([]domain.AssemblyRecord, error)
}

type CatalogService interface {
	Employees(ctx context.Context) ([]domain.Employee, error)
	Bikes(ctx context.Context) ([]domain.Bike, error)
	AssemblyRecords(ctx context.Context) ([]domain.AssemblyRecord, error)
}
