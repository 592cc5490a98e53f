package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bikeworks/assembly-tracker/internal/core/domain"
	"github.com/bikeworks/assembly-tracker/internal/core/ports"
)

// DateLayout is the calendar date format accepted by the reporting endpoints.
const DateLayout = "2006-01-02"

type ReportService struct {
	repo ports.ReportRepository
	log  zerolog.Logger
}

func NewReportService(repo ports.ReportRepository, log zerolog.Logger) *ReportService {
	return &ReportService{repo: repo, log: log}
}

// ProductionByRange sums closed employee sessions per bike where both the login
// and logout dates fall inside [FromDate, ToDate]. An empty window is reported
// as domain.ErrNoProduction.
func (s *ReportService) ProductionByRange(ctx context.Context, in ports.ProductionRangeInput) ([]domain.BikeProduction, error) {
	from, err := parseDate(in.FromDate)
	if err != nil {
		return nil, err
	}
	to, err := parseDate(in.ToDate)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.DurationByRange(ctx, from, to)
	if err != nil {
		s.log.Error().Err(err).Str("from", in.FromDate).Str("to", in.ToDate).Msg("failed to fetch total logged duration")
		return nil, domain.NewPersistenceError("Failed to fetch total logged duration.", err)
	}

	if len(rows) == 0 || rows[0].TotalSeconds == nil {
		return nil, domain.ErrNoProduction
	}
	return toProduction(rows), nil
}

// ProductionByDate sums closed employee sessions per bike logged in on the given
// day. Unlike ProductionByRange, no rows yields an empty slice rather than an error.
func (s *ReportService) ProductionByDate(ctx context.Context, specificDate string) ([]domain.BikeProduction, error) {
	day, err := parseDate(specificDate)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.DurationByDate(ctx, day)
	if err != nil {
		s.log.Error().Err(err).Str("date", specificDate).Msg("failed to fetch total logged duration")
		return nil, domain.NewPersistenceError("Failed to fetch total logged duration.", err)
	}
	return toProduction(rows), nil
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q must be formatted as YYYY-MM-DD", domain.ErrInvalidDate, s)
	}
	return d, nil
}

func toProduction(rows []ports.BikeDurationRow) []domain.BikeProduction {
	out := make([]domain.BikeProduction, 0, len(rows))
	for _, r := range rows {
		p := domain.BikeProduction{BikeID: r.BikeID}
		if r.TotalSeconds != nil {
			formatted := domain.FormatDuration(*r.TotalSeconds)
			p.TotalLoggedDuration = &formatted
		}
		out = append(out, p)
	}
	return out
}
