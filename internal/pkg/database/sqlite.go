package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// OpenSQLite opens an embedded store at path, or an in-memory one for ":memory:".
// WAL mode and foreign keys are enabled and the schema is migrated.
func OpenSQLite(path string) (*sql.DB, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// every connection to ":memory:" is a separate database
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := MigrateSQLite(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

// MigrateSQLite runs all schema migrations.
func MigrateSQLite(db *sql.DB) error {
	for i, stmt := range sqliteMigrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Timestamps are stored as fixed-width UTC text so that string order is time order.
var sqliteMigrations = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id                TEXT PRIMARY KEY,
		full_name         TEXT NOT NULL,
		employee_code     TEXT NOT NULL DEFAULT '',
		department_id     TEXT,
		manager_id        TEXT REFERENCES employees(id) ON DELETE SET NULL,
		daily_hours       REAL NOT NULL DEFAULT 8,
		work_start_time   TEXT NOT NULL DEFAULT '08:00:00',
		employment_status TEXT NOT NULL DEFAULT 'active'
		                  CHECK(employment_status IN ('active','inactive')),
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_employees_department ON employees(department_id)`,

	`CREATE TABLE IF NOT EXISTS punches (
		id          TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		timestamp   TEXT NOT NULL,
		type        TEXT NOT NULL,
		method      TEXT NOT NULL DEFAULT 'web',
		nsr         INTEGER NOT NULL,
		latitude    REAL,
		longitude   REAL,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_punches_employee_timestamp ON punches(employee_id, timestamp)`,

	`CREATE TABLE IF NOT EXISTS justifications (
		id          TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		date        TEXT NOT NULL,
		status      TEXT NOT NULL DEFAULT 'pending'
		            CHECK(status IN ('pending','approved','rejected')),
		reason      TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_justifications_employee_date ON justifications(employee_id, date)`,

	`CREATE TABLE IF NOT EXISTS settings (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}
