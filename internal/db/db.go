// Package db provides PostgreSQL storage for scored job postings.
package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// CreateRun creates a new scoring run record and returns its ID. A run groups
// the postings scored by one batch invocation.
func (db *DB) CreateRun(ctx context.Context, source string, jobCount int) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO scoring_runs (source, job_count, status)
		 VALUES ($1, $2, 'running')
		 RETURNING id`,
		source, jobCount,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a scoring run as completed
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status string, recommended int) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE scoring_runs SET status = $1, recommended_count = $2, completed_at = NOW() WHERE id = $3`,
		status, recommended, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}
