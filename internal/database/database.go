package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(ctx context.Context, dbURL string, maxConns int, maxConnLifetime time.Duration) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = int32(maxConns)
	cfg.MaxConnLifetime = maxConnLifetime
	return pgxpool.NewWithConfig(ctx, cfg)
}

// schema statements executed at startup; idempotent on purpose so the
// service can boot against a fresh or existing database.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS questions (
	id BIGSERIAL PRIMARY KEY,
	job_title VARCHAR(255) NOT NULL,
	question_text TEXT NOT NULL,
	question_type VARCHAR(50) NOT NULL,
	difficulty INT NOT NULL DEFAULT 1,
	is_flagged BOOLEAN NOT NULL DEFAULT FALSE,
	tags VARCHAR(500) NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE INDEX IF NOT EXISTS idx_questions_job_title ON questions (job_title)`,
	`CREATE TABLE IF NOT EXISTS question_sets (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	job_title VARCHAR(255) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS question_set_items (
	set_id BIGINT NOT NULL REFERENCES question_sets(id),
	question_id BIGINT NOT NULL REFERENCES questions(id),
	position INT NOT NULL,
	PRIMARY KEY (set_id, question_id),
	UNIQUE (set_id, position)
)`,
	`CREATE TABLE IF NOT EXISTS ratings (
	id BIGSERIAL PRIMARY KEY,
	question_id BIGINT NOT NULL REFERENCES questions(id),
	rating DOUBLE PRECISION NOT NULL,
	feedback TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE INDEX IF NOT EXISTS idx_ratings_question_id ON ratings (question_id)`,
}

// Migrate creates the tables the service needs if they do not exist yet.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
