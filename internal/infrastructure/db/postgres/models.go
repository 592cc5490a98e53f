package postgres

import (
	"time"

	"github.com/bikeworks/assembly-tracker/internal/core/domain"
)

type employeeRow struct {
	ID       int64   `gorm:"column:id;primaryKey"`
	Username string  `gorm:"column:username"`
	Password string  `gorm:"column:password"`
	Role     string  `gorm:"column:role"`
	Token    *string `gorm:"column:token"`
}

func (employeeRow) TableName() string { return "employees" }

func (r employeeRow) toDomain() domain.Employee {
	e := domain.Employee{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.Password,
		Role:         r.Role,
	}
	if r.Token != nil {
		e.Token = *r.Token
	}
	return e
}

type bikeRow struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Model     string    `gorm:"column:model"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (bikeRow) TableName() string { return "bikes" }

func (r bikeRow) toDomain() domain.Bike {
	return domain.Bike{ID: r.ID, Name: r.Name, Model: r.Model, CreatedAt: r.CreatedAt.UTC()}
}

// recordRow mirrors assembly_records with the interval column read as whole
// seconds (see recordColumns).
type recordRow struct {
	ID              int64      `gorm:"column:id;primaryKey"`
	EmployeeID      int64      `gorm:"column:employee_id"`
	BikeID          string     `gorm:"column:bike_id"`
	Role            string     `gorm:"column:role"`
	ActiveLogin     bool       `gorm:"column:active_login"`
	LoggedInTime    time.Time  `gorm:"column:logged_in_time"`
	LoggedOutTime   *time.Time `gorm:"column:logged_out_time"`
	DurationSeconds *int64     `gorm:"column:logged_duration_seconds"`
}

func (recordRow) TableName() string { return "assembly_records" }

const recordColumns = `id, employee_id, bike_id, role, active_login, logged_in_time, logged_out_time,
EXTRACT(EPOCH FROM logged_duration)::bigint AS logged_duration_seconds`

func (r recordRow) toDomain() domain.AssemblyRecord {
	rec := domain.AssemblyRecord{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		BikeID:       r.BikeID,
		Role:         r.Role,
		ActiveLogin:  r.ActiveLogin,
		LoggedInTime: r.LoggedInTime.UTC(),
	}
	if r.LoggedOutTime != nil {
		out := r.LoggedOutTime.UTC()
		rec.LoggedOutTime = &out
	}
	if r.DurationSeconds != nil {
		d := domain.FormatDuration(*r.DurationSeconds)
		rec.LoggedDuration = &d
	}
	return rec
}
