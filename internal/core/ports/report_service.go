package ports

import (
	"context"

	"github.com/bikeworks/assembly-tracker/internal/core/domain"
)

// ProductionRangeInput carries the inclusive date window, formatted YYYY-MM-DD.
type ProductionRangeInput struct {
	FromDate string
	ToDate   string
}

type ReportService interface {
	ProductionByRange(ctx context.Context, input ProductionRangeInput) ([]domain.BikeProduction, error)
	ProductionByDate(ctx context.Context, specificDate string) ([]domain.BikeProduction, error)
}
