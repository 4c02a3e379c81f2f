package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/leadscore/internal/types"
)

// UpsertJob stores a scored posting. The full posting is kept as JSON; the
// score, classification, and EHR are lifted into columns so listings can
// filter and sort without unmarshaling every row.
func (db *DB) UpsertJob(ctx context.Context, job *types.JobPosting) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job %s: %w", job.ID, err)
	}

	var total, ehr float64
	if job.Score != nil {
		total = job.Score.Total
	}
	if job.Enrichment != nil {
		ehr = job.Enrichment.EstimatedEHR
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO job_postings (id, title, score, estimated_ehr, classification, payload, scored_at)
		 VALUES ($1, $2, $3, $4, $5, $6, NOW())
		 ON CONFLICT (id) DO UPDATE SET
		   title = $2, score = $3, estimated_ehr = $4, classification = $5, payload = $6, scored_at = NOW()`,
		job.ID, job.Title, total, ehr, string(job.Classification), payload,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert job %s: %w", job.ID, err)
	}
	return nil
}

// GetJob retrieves a posting by ID. Returns nil when not found.
func (db *DB) GetJob(ctx context.Context, id string) (*types.JobPosting, error) {
	var payload []byte
	err := db.pool.QueryRow(ctx,
		`SELECT payload FROM job_postings WHERE id = $1`, id,
	).Scan(&payload)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job %s: %w", id, err)
	}

	var job types.JobPosting
	if err := json.Unmarshal(payload, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job %s: %w", id, err)
	}
	return &job, nil
}

// JobFilters holds optional filters for listing postings
type JobFilters struct {
	Classification types.Classification
	MinScore       float64
	Limit          int
}

// buildListQuery assembles the filtered listing query and its arguments.
func buildListQuery(filters JobFilters) (string, []any) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT payload FROM job_postings WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Classification != "" {
		query += fmt.Sprintf(" AND classification = $%d", argNum)
		args = append(args, string(filters.Classification))
		argNum++
	}
	if filters.MinScore > 0 {
		query += fmt.Sprintf(" AND score >= $%d", argNum)
		args = append(args, filters.MinScore)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY score DESC, scored_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	return query, args
}

// ListJobs retrieves postings with optional filters, best score first.
func (db *DB) ListJobs(ctx context.Context, filters JobFilters) ([]*types.JobPosting, error) {
	query, args := buildListQuery(filters)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*types.JobPosting
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		var job types.JobPosting
		if err := json.Unmarshal(payload, &job); err != nil {
			return nil, fmt.Errorf("failed to unmarshal job: %w", err)
		}
		jobs = append(jobs, &job)
	}
	return jobs, nil
}

// SetManualOverride marks a posting as recommended regardless of its
// automatic classification. The override is stored on the payload so it
// survives rescoring.
func (db *DB) SetManualOverride(ctx context.Context, id string) error {
	job, err := db.GetJob(ctx, id)
	if err != nil {
		return err
	}
	if job == nil {
		return fmt.Errorf("job not found: %s", id)
	}

	job.ManualOverride = &types.ManualOverride{
		ForceRecommended: true,
		OverriddenAt:     time.Now().UTC(),
	}
	return db.UpsertJob(ctx, job)
}

// ClearManualOverride removes a posting's manual override.
func (db *DB) ClearManualOverride(ctx context.Context, id string) error {
	job, err := db.GetJob(ctx, id)
	if err != nil {
		return err
	}
	if job == nil {
		return fmt.Errorf("job not found: %s", id)
	}

	job.ManualOverride = nil
	return db.UpsertJob(ctx, job)
}
