package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/bikeworks/assembly-tracker/internal/core/domain"
)

// AuthRepository implements ports.AuthRepository on PostgreSQL.
type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) FindByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var row employeeRow
	err := r.db.WithContext(ctx).Where("username = ?", username).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}

	e := row.toDomain()
	return &e, nil
}

// OpenSession runs the token write, the open-session check and the record
// insert in one transaction. Updating the employee row first takes its row
// lock, so concurrent logins for the same employee are serialised before the
// check runs.
func (r *AuthRepository) OpenSession(ctx context.Context, employee *domain.Employee, token, bikeID string) (*domain.AssemblyRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var inserted struct {
		ID           int64     `gorm:"column:id"`
		LoggedInTime time.Time `gorm:"column:logged_in_time"`
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(`UPDATE employees SET token = ? WHERE id = ?`, token, employee.ID)
		if res.Error != nil {
			return fmt.Errorf("store token: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrEmployeeNotFound
		}

		var open int64
		err := tx.Raw(`
			SELECT COUNT(*) FROM assembly_records
			WHERE employee_id = ? AND active_login = TRUE AND logged_out_time IS NULL
		`, employee.ID).Scan(&open).Error
		if err != nil {
			return fmt.Errorf("check open session: %w", err)
		}
		if open > 0 {
			return domain.ErrSessionAlreadyOpen
		}

		err = tx.Raw(`
			INSERT INTO assembly_records (employee_id, bike_id, role, active_login, logged_in_time)
			VALUES (?, ?, ?, TRUE, CURRENT_TIMESTAMP)
			RETURNING id, logged_in_time
		`, employee.ID, bikeID, employee.Role).Scan(&inserted).Error
		if err != nil {
			if isOpenSessionConflict(err) {
				return domain.ErrSessionAlreadyOpen
			}
			return fmt.Errorf("insert record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &domain.AssemblyRecord{
		ID:           inserted.ID,
		EmployeeID:   employee.ID,
		BikeID:       bikeID,
		Role:         employee.Role,
		ActiveLogin:  true,
		LoggedInTime: inserted.LoggedInTime.UTC(),
	}, nil
}
