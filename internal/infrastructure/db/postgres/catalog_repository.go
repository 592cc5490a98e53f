package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/bikeworks/assembly-tracker/internal/core/domain"
)

// CatalogRepository implements ports.CatalogRepository on PostgreSQL.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rows []employeeRow
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	out := make([]domain.Employee, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

func (r *CatalogRepository) ListBikes(ctx context.Context) ([]domain.Bike, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rows []bikeRow
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list bikes: %w", err)
	}
	out := make([]domain.Bike, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

func (r *CatalogRepository) ListAssemblyRecords(ctx context.Context) ([]domain.AssemblyRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rows []recordRow
	if err := r.db.WithContext(ctx).Select(recordColumns).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list assembly records: %w", err)
	}
	out := make([]domain.AssemblyRecord, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}
