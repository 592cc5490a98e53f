package ports

import (
	"context"
	"time"
)

// BikeDurationRow is a raw aggregate row: seconds summed per bike.
type BikeDurationRow struct {
	BikeID       string
	TotalSeconds *int64
}

// ReportRepository aggregates closed "employee" sessions per bike.
type ReportRepository interface {
	// DurationByRange filters on both login and logout dates within [from, to].
	DurationByRange(ctx context.Context, from, to time.Time) ([]BikeDurationRow, error)
	// DurationByDate filters on the login date only.
	DurationByDate(ctx context.Context, day time.Time) ([]BikeDurationRow, error)
}
