package database

import (
	"context"
	"fmt"
	"time"

	"codecard/internal/metrics"
)

// Job statuses stored in the history table.
const (
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// Job is one recorded batch run.
type Job struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	Format      string    `json:"format"`
	RowCount    int       `json:"rowCount"`
	BundleCount int       `json:"bundleCount"`
	Status      string    `json:"status"`
	Error       string    `json:"error,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// InsertJob records a finished batch run.
func (d *Database) InsertJob(ctx context.Context, job *Job) error {
	start := time.Now()
	opCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := d.db.ExecContext(opCtx,
		`INSERT INTO jobs (id, filename, format, row_count, bundle_count, status, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		job.ID, job.Filename, job.Format, job.RowCount, job.BundleCount,
		job.Status, job.Error, job.CreatedAt)
	observeQuery("insert_job", start, err)
	if err != nil {
		return fmt.Errorf("failed to insert job %s: %w", job.ID, err)
	}
	return nil
}

// ListJobs returns the most recent jobs, newest first.
func (d *Database) ListJobs(ctx context.Context, limit int) ([]Job, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	start := time.Now()
	opCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := d.db.QueryContext(opCtx,
		`SELECT id, filename, format, row_count, bundle_count, status, error, created_at
		 FROM jobs ORDER BY created_at DESC, id LIMIT ?`, limit)
	observeQuery("list_jobs", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		var job Job
		if err := rows.Scan(&job.ID, &job.Filename, &job.Format, &job.RowCount,
			&job.BundleCount, &job.Status, &job.Error, &job.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job rows: %w", err)
	}
	return jobs, nil
}

// IncrementCounter bumps a named generation counter by delta.
func (d *Database) IncrementCounter(ctx context.Context, name string, delta int) error {
	start := time.Now()
	opCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := d.db.ExecContext(opCtx,
		`INSERT INTO counters (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = value + excluded.value`,
		name, delta)
	observeQuery("increment_counter", start, err)
	if err != nil {
		return fmt.Errorf("failed to increment counter %s: %w", name, err)
	}
	return nil
}

// Counters returns all generation counters.
func (d *Database) Counters(ctx context.Context) (map[string]int, error) {
	start := time.Now()
	opCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := d.db.QueryContext(opCtx, `SELECT name, value FROM counters`)
	observeQuery("counters", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to read counters: %w", err)
	}
	defer rows.Close()

	counters := make(map[string]int)
	for rows.Next() {
		var name string
		var value int
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("failed to scan counter row: %w", err)
		}
		counters[name] = value
	}
	return counters, rows.Err()
}

// GetStats aggregates job history for the metrics collector and the
// stats endpoint. Errors degrade to zero values since stats are
// advisory.
func (d *Database) GetStats() metrics.Stats {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	start := time.Now()
	row := d.db.QueryRowContext(ctx,
		`SELECT
			COUNT(CASE WHEN status = ? THEN 1 END),
			COUNT(CASE WHEN status = ? THEN 1 END),
			COALESCE(SUM(row_count), 0)
		 FROM jobs`, JobStatusCompleted, JobStatusFailed)

	var stats metrics.Stats
	err := row.Scan(&stats.JobsCompleted, &stats.JobsFailed, &stats.TotalRows)
	observeQuery("job_stats", start, err)
	if err != nil {
		return metrics.Stats{}
	}
	return stats
}
