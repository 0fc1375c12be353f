package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent, so the
// whole list re-runs on every startup; "duplicate column name" errors from
// ALTER TABLE statements are tolerated for the same reason.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Timer-based tracking. end_time and duration stay NULL while a session
	// is running and are set together when it stops.
	`CREATE TABLE IF NOT EXISTS work_sessions (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		start_time TEXT NOT NULL,
		end_time   TEXT,
		duration   INTEGER,
		task_name  TEXT NOT NULL DEFAULT '',
		notes      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_work_sessions_start ON work_sessions(start_time)`,
	`CREATE INDEX IF NOT EXISTS idx_work_sessions_open ON work_sessions(start_time) WHERE end_time IS NULL`,

	// Manually entered time.
	`CREATE TABLE IF NOT EXISTS manual_entries (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		date       TEXT NOT NULL,
		duration   INTEGER NOT NULL CHECK(duration > 0),
		task_name  TEXT NOT NULL,
		notes      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_manual_entries_date ON manual_entries(date)`,
}
