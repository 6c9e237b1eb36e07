// Package db provides PostgreSQL storage for document generation runs in
// server mode.
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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

// Run represents one document generation run record.
type Run struct {
	ID          uuid.UUID  `json:"id"`
	DocType     string     `json:"doc_type"`
	Language    string     `json:"language"`
	Scenario    string     `json:"scenario"`
	Status      string     `json:"status"`
	OutputFile  string     `json:"output_file,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// CreateRun creates a new document run record and returns its ID
func (db *DB) CreateRun(ctx context.Context, docType, language, scenario string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO document_runs (doc_type, language, scenario, status)
		 VALUES ($1, $2, $3, 'running')
		 RETURNING id`,
		docType, language, scenario,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a document run as finished with its final status and
// output filename.
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status, outputFile string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE document_runs SET status = $1, output_file = $2, completed_at = NOW() WHERE id = $3`,
		status, outputFile, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// SaveMetadata stores the generation metadata JSON for a run.
func (db *DB) SaveMetadata(ctx context.Context, runID uuid.UUID, metadata any) error {
	jsonBytes, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO run_metadata (run_id, content)
		 VALUES ($1, $2)
		 ON CONFLICT (run_id) DO UPDATE SET content = $2, created_at = NOW()`,
		runID, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save metadata: %w", err)
	}
	return nil
}

// GetMetadata retrieves the metadata JSON for a run. Returns nil when the
// run has no metadata yet.
func (db *DB) GetMetadata(ctx context.Context, runID uuid.UUID) ([]byte, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM run_metadata WHERE run_id = $1`,
		runID,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get metadata: %w", err)
	}
	return content, nil
}

// GetRun retrieves a document run by ID. Returns nil when not found.
func (db *DB) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	var run Run
	err := db.pool.QueryRow(ctx,
		`SELECT id, doc_type, language, scenario, status, COALESCE(output_file, ''), created_at, completed_at
		 FROM document_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.DocType, &run.Language, &run.Scenario, &run.Status, &run.OutputFile, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// RunFilters holds optional filters for listing runs
type RunFilters struct {
	DocType string
	Status  string
	Limit   int
}

// ListRuns retrieves recent document runs with optional filters
func (db *DB) ListRuns(ctx context.Context, filters RunFilters) ([]Run, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, doc_type, language, scenario, status, COALESCE(output_file, ''), created_at, completed_at
		FROM document_runs WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.DocType != "" {
		query += fmt.Sprintf(" AND doc_type = $%d", argNum)
		args = append(args, filters.DocType)
		argNum++
	}
	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.DocType, &run.Language, &run.Scenario, &run.Status, &run.OutputFile, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// DeleteRun deletes a document run and its metadata (via cascade)
func (db *DB) DeleteRun(ctx context.Context, runID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM document_runs WHERE id = $1`, runID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("run not found: %s", runID)
	}
	return nil
}
