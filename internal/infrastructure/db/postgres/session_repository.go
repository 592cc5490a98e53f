package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bikeworks/assembly-tracker/internal/core/domain"
)

// SessionRepository implements ports.SessionRepository on PostgreSQL.
type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// FindOpenSession picks the newest open record when more than one exists.
func (r *SessionRepository) FindOpenSession(ctx context.Context, employeeID int64) (*domain.AssemblyRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var row recordRow
	err := r.db.WithContext(ctx).
		Select(recordColumns).
		Where("employee_id = ? AND active_login = ? AND logged_out_time IS NULL", employeeID, true).
		Order("logged_in_time DESC, id DESC").
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find open session: %w", err)
	}

	rec := row.toDomain()
	return &rec, nil
}

// CloseSession stamps logout time and, for the employee role only, the elapsed
// duration in a single statement. Other roles keep whatever duration they had.
func (r *SessionRepository) CloseSession(ctx context.Context, recordID int64) (*int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var closed struct {
		Seconds *int64 `gorm:"column:logged_seconds"`
	}
	res := r.db.WithContext(ctx).Raw(`
		UPDATE assembly_records
		SET logged_out_time = CURRENT_TIMESTAMP,
		    logged_duration = CASE
		        WHEN role = ? THEN date_trunc('second', CURRENT_TIMESTAMP - logged_in_time)
		        ELSE logged_duration
		    END,
		    active_login = FALSE
		WHERE id = ? AND active_login = TRUE
		RETURNING CASE WHEN role = ? THEN EXTRACT(EPOCH FROM logged_duration)::bigint END AS logged_seconds
	`, domain.RoleEmployee, recordID, domain.RoleEmployee).Scan(&closed)
	if res.Error != nil {
		return nil, fmt.Errorf("close session: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrSessionNotFound
	}
	return closed.Seconds, nil
}

func (r *SessionRepository) ReassignBike(ctx context.Context, employeeID int64, bikeID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Exec(
		`UPDATE assembly_records SET bike_id = ? WHERE employee_id = ? AND active_login = TRUE`,
		bikeID, employeeID,
	)
	if res.Error != nil {
		return 0, fmt.Errorf("reassign bike: %w", res.Error)
	}
	return res.RowsAffected, nil
}
