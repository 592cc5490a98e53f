package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// openSessionIndex enforces at most one active assembly record per employee.
const openSessionIndex = "assembly_records_one_open_per_employee"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS employees (
    id BIGSERIAL PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    role TEXT NOT NULL DEFAULT 'employee',
    token TEXT
)`,
	`CREATE TABLE IF NOT EXISTS bikes (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL DEFAULT '',
    model TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE TABLE IF NOT EXISTS assembly_records (
    id BIGSERIAL PRIMARY KEY,
    employee_id BIGINT NOT NULL REFERENCES employees(id),
    bike_id TEXT NOT NULL,
    role TEXT NOT NULL,
    active_login BOOLEAN NOT NULL DEFAULT FALSE,
    logged_in_time TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    logged_out_time TIMESTAMPTZ,
    logged_duration INTERVAL
)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ` + openSessionIndex + `
ON assembly_records (employee_id) WHERE active_login`,
	`CREATE INDEX IF NOT EXISTS assembly_records_logged_in_time_idx
ON assembly_records (logged_in_time)`,
}

// Migrate creates the tables and indexes when they are missing. It is safe to
// run against a schema that already exists.
func Migrate(ctx context.Context, db *gorm.DB) error {
	for _, stmt := range schema {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
