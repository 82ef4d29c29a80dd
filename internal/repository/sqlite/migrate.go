package sqlite

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
		created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_employees_email_lower ON employees (LOWER(email))`,
	`CREATE TABLE IF NOT EXISTS attendances (
		id          TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		date        TEXT NOT NULL,
		status      TEXT NOT NULL CHECK (status IN ('Present', 'Absent')),
		created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (employee_id, date),
		FOREIGN KEY (employee_id) REFERENCES employees (employee_id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attendances_date ON attendances (date)`,
}

// Migrate creates the schema when it does not exist yet
func Migrate(ctx context.Context, db *database.SQLiteDB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate sqlite: %w", err)
		}
	}
	slog.Debug("Database schema ready", "driver", "sqlite")
	return nil
}
