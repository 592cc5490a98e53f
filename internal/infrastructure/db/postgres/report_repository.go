package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/bikeworks/assembly-tracker/internal/core/domain"
	"github.com/bikeworks/assembly-tracker/internal/core/ports"
)

const sqlDate = "2006-01-02"

// ReportRepository implements ports.ReportRepository on PostgreSQL. Dates are
// always bound as parameters.
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

type durationRow struct {
	BikeID       string `gorm:"column:bike_id"`
	TotalSeconds *int64 `gorm:"column:total_seconds"`
}

func (r *ReportRepository) DurationByRange(ctx context.Context, from, to time.Time) ([]ports.BikeDurationRow, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	f, t := from.Format(sqlDate), to.Format(sqlDate)
	var rows []durationRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT bike_id,
		       SUM(EXTRACT(EPOCH FROM logged_duration))::bigint AS total_seconds
		FROM assembly_records
		WHERE logged_out_time IS NOT NULL
		  AND CAST(logged_in_time AS date) BETWEEN CAST(? AS date) AND CAST(? AS date)
		  AND CAST(logged_out_time AS date) BETWEEN CAST(? AS date) AND CAST(? AS date)
		  AND role = ?
		GROUP BY bike_id
		ORDER BY bike_id
	`, f, t, f, t, domain.RoleEmployee).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("duration by range: %w", err)
	}
	return toDurationRows(rows), nil
}

func (r *ReportRepository) DurationByDate(ctx context.Context, day time.Time) ([]ports.BikeDurationRow, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rows []durationRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT bike_id,
		       SUM(EXTRACT(EPOCH FROM logged_duration))::bigint AS total_seconds
		FROM assembly_records
		WHERE role = ?
		  AND logged_out_time IS NOT NULL
		  AND CAST(logged_in_time AS date) = CAST(? AS date)
		GROUP BY bike_id
		ORDER BY bike_id
	`, domain.RoleEmployee, day.Format(sqlDate)).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("duration by date: %w", err)
	}
	return toDurationRows(rows), nil
}

func toDurationRows(rows []durationRow) []ports.BikeDurationRow {
	out := make([]ports.BikeDurationRow, len(rows))
	for i, r := range rows {
		out[i] = ports.BikeDurationRow{BikeID: r.BikeID, TotalSeconds: r.TotalSeconds}
	}
	return out
}
