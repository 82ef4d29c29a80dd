package postgresql

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		employee_id TEXT PRIMARY KEY,
		full_name   TEXT NOT NULL,
		email       TEXT NOT NULL,
		department  TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_employees_email_lower ON employees (LOWER(email))`,
	`CREATE TABLE IF NOT EXISTS attendances (
		id          TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees (employee_id) ON DELETE CASCADE,
		date        DATE NOT NULL,
		status      TEXT NOT NULL CHECK (status IN ('Present', 'Absent')),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT uq_attendances_employee_date UNIQUE (employee_id, date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attendances_date ON attendances (date)`,
}

// Migrate creates the schema when it does not exist yet
func Migrate(ctx context.Context, db *database.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate postgresql: %w", err)
		}
	}
	slog.Info("Database schema ready", "driver", "postgres")
	return nil
}
