package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bikeworks/assembly-tracker/internal/core/domain"
	"github.com/bikeworks/assembly-tracker/internal/core/ports"
)

// CatalogService lists the reference tables as stored.
type CatalogService struct {
	repo ports.CatalogRepository
	log  zerolog.Logger
}

func NewCatalogService(repo ports.CatalogRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log}
}

func (s *CatalogService) Employees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to fetch employees")
		return nil, domain.NewPersistenceError("Failed to fetch employees", err)
	}
	if employees == nil {
		employees = []domain.Employee{}
	}
	return employees, nil
}

func (s *CatalogService) Bikes(ctx context.Context) ([]domain.Bike, error) {
	bikes, err := s.repo.ListBikes(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to fetch bikes")
		return nil, domain.NewPersistenceError("Failed to fetch bikes", err)
	}
	if bikes == nil {
		bikes = []domain.Bike{}
	}
	return bikes, nil
}

func (s *CatalogService) AssemblyRecords(ctx context.Context) ([]domain.AssemblyRecord, error) {
	records, err := s.repo.ListAssemblyRecords(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to fetch assembly records")
		return nil, domain.NewPersistenceError("Failed to fetch assembly records", err)
	}
	if records == nil {
		records = []domain.AssemblyRecord{}
	}
	return records, nil
}
