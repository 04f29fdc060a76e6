package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DB struct {
	*pgxpool.Pool
}

func NewPostgreSQLDB(dsn string) (*DB, error) {
	config, err := pgxpool.ParseConfig(dsn)

	if err != nil {
		return nil, err
	}

	// Connection pool settings
	config.MaxConns = 25
	config.MinConns = 5

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	return &DB{Pool: pool}, nil
}

// Migrate applies the timekeeping schema. Every statement is idempotent.
func (db *DB) Migrate(ctx context.Context) error {
	for i, stmt := range postgresMigrations {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var postgresMigrations = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id                UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		full_name         TEXT NOT NULL,
		employee_code     TEXT,
		department_id     TEXT,
		manager_id        UUID REFERENCES employees(id) ON DELETE SET NULL,
		daily_hours       NUMERIC(5,2) NOT NULL DEFAULT 8,
		work_start_time   TIME NOT NULL DEFAULT '08:00:00',
		employment_status TEXT NOT NULL DEFAULT 'active'
		                  CHECK (employment_status IN ('active', 'inactive')),
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_employees_department ON employees(department_id)`,

	`CREATE TABLE IF NOT EXISTS punches (
		id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		employee_id UUID NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		timestamp   TIMESTAMPTZ NOT NULL,
		type        TEXT NOT NULL,
		method      TEXT NOT NULL DEFAULT 'web',
		nsr         BIGINT NOT NULL,
		latitude    DOUBLE PRECISION,
		longitude   DOUBLE PRECISION,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_punches_employee_timestamp ON punches(employee_id, timestamp)`,

	`CREATE TABLE IF NOT EXISTS justifications (
		id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		employee_id UUID NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		date        DATE NOT NULL,
		status      TEXT NOT NULL DEFAULT 'pending'
		            CHECK (status IN ('pending', 'approved', 'rejected')),
		reason      TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_justifications_employee_date ON justifications(employee_id, date)`,

	`CREATE TABLE IF NOT EXISTS settings (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}
