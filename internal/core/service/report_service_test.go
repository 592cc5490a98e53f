package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bikeworks/assembly-tracker/internal/core/domain"
	"github.com/bikeworks/assembly-tracker/internal/core/ports"
)

type stubReportRepo struct {
	rows    []ports.BikeDurationRow
	err     error
	gotFrom time.Time
	gotTo   time.Time
	gotDay  time.Time
}

func (r *stubReportRepo) DurationByRange(_ context.Context, from, to time.Time) ([]ports.BikeDurationRow, error) {
	r.gotFrom, r.gotTo = from, to
	return r.rows, r.err
}

func (r *stubReportRepo) DurationByDate(_ context.Context, day time.Time) ([]ports.BikeDurationRow, error) {
	r.gotDay = day
	return r.rows, r.err
}

func seconds(n int64) *int64 { return &n }

func TestReportService_ProductionByRange(t *testing.T) {
	repo := &stubReportRepo{rows: []ports.BikeDurationRow{{BikeID: "B1", TotalSeconds: seconds(5400)}}}
	svc := NewReportService(repo, zerolog.Nop())

	got, err := svc.ProductionByRange(context.Background(), ports.ProductionRangeInput{FromDate: "2024-05-01", ToDate: "2024-05-31"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].BikeID != "B1" || got[0].TotalLoggedDuration == nil || *got[0].TotalLoggedDuration != "01:30:00" {
		t.Fatalf("unexpected production: %+v", got)
	}
	if repo.gotFrom.Format(DateLayout) != "2024-05-01" || repo.gotTo.Format(DateLayout) != "2024-05-31" {
		t.Fatalf("dates not passed through: %v %v", repo.gotFrom, repo.gotTo)
	}
}

func TestReportService_ProductionByRange_Empty(t *testing.T) {
	svc := NewReportService(&stubReportRepo{}, zerolog.Nop())
	_, err := svc.ProductionByRange(context.Background(), ports.ProductionRangeInput{FromDate: "2024-05-01", ToDate: "2024-05-02"})
	if !errors.Is(err, domain.ErrNoProduction) {
		t.Fatalf("expected ErrNoProduction, got %v", err)
	}
}

func TestReportService_ProductionByRange_NullTotal(t *testing.T) {
	repo := &stubReportRepo{rows: []ports.BikeDurationRow{{BikeID: "B1"}}}
	svc := NewReportService(repo, zerolog.Nop())
	_, err := svc.ProductionByRange(context.Background(), ports.ProductionRangeInput{FromDate: "2024-05-01", ToDate: "2024-05-02"})
	if !errors.Is(err, domain.ErrNoProduction) {
		t.Fatalf("expected ErrNoProduction, got %v", err)
	}
}

func TestReportService_ProductionByRange_InvalidDate(t *testing.T) {
	repo := &stubReportRepo{}
	svc := NewReportService(repo, zerolog.Nop())
	_, err := svc.ProductionByRange(context.Background(), ports.ProductionRangeInput{FromDate: "2024-05-01' OR 1=1 --", ToDate: "2024-05-02"})
	if !errors.Is(err, domain.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if !repo.gotFrom.IsZero() {
		t.Fatalf("store must not be queried with an invalid date")
	}
}

func TestReportService_ProductionByDate_EmptyIsNotAnError(t *testing.T) {
	svc := NewReportService(&stubReportRepo{}, zerolog.Nop())
	got, err := svc.ProductionByDate(context.Background(), "2024-05-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestReportService_ProductionByDate_StoreError(t *testing.T) {
	svc := NewReportService(&stubReportRepo{err: errors.New("down")}, zerolog.Nop())
	var pe *domain.PersistenceError
	if _, err := svc.ProductionByDate(context.Background(), "2024-05-01"); !errors.As(err, &pe) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
}
