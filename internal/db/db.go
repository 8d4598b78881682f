package db

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func NewPool(ctx context.Context, databaseURL string) *pgxpool.Pool {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		log.Fatalf("parse db url: %v", err)
	}

	// Reasonable pool sizes for a small service
	cfg.MaxConns = 10
	cfg.MinConns = 1
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("create pool: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("db ping failed: %v", err)
	}
	return pool
}

const schema = `
CREATE TABLE IF NOT EXISTS employees (
	id          BIGSERIAL PRIMARY KEY,
	employee_id VARCHAR(50)  NOT NULL UNIQUE,
	full_name   VARCHAR(150) NOT NULL,
	email       VARCHAR(255) NOT NULL UNIQUE,
	department  VARCHAR(100) NOT NULL,
	created_at  TIMESTAMPTZ  NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS attendance (
	id          BIGSERIAL PRIMARY KEY,
	employee_id BIGINT      NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
	date        DATE        NOT NULL,
	status      VARCHAR(10) NOT NULL,
	CONSTRAINT uq_employee_date UNIQUE (employee_id, date)
);

CREATE INDEX IF NOT EXISTS idx_attendance_employee ON attendance (employee_id);
`

// EnsureSchema creates the tables on startup if they do not exist yet.
// Safe to run on every boot.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) {
	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatalf("create schema: %v", err)
	}
}
