package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// ImportRun is one recorded statement ingestion.
type ImportRun struct {
	ID             int64
	RunID          string
	Source         string
	Checksum       string
	CompanyID      int64
	FiscalPeriodID int64
	Accepted       int
	Duplicates     int
	Unparsed       int
	Failed         int
	ImportedAt     time.Time
}

// Stats aggregates every recorded run.
type Stats struct {
	TotalRuns       int
	TotalAccepted   int
	TotalDuplicates int
	TotalUnparsed   int
	TotalFailed     int
	LastImport      sql.NullString
}

// Store manages the SQLite history database.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open opens the history database, creating the file and schema when needed.
// WAL mode keeps concurrent readers from blocking the writer.
func Open(dbPath string) (*Store, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	connStr := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", dbPath)
	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

// RecordRun stores one completed ingestion run.
func (s *Store) RecordRun(ctx context.Context, run ImportRun) (ImportRun, error) {
	query := `
		INSERT INTO import_runs (run_id, source, checksum, company_id, fiscal_period_id, accepted, duplicates, unparsed, failed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		run.RunID,
		run.Source,
		run.Checksum,
		run.CompanyID,
		run.FiscalPeriodID,
		run.Accepted,
		run.Duplicates,
		run.Unparsed,
		run.Failed,
	)
	if err != nil {
		return ImportRun{}, fmt.Errorf("failed to record import run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return ImportRun{}, fmt.Errorf("failed to read import run id: %w", err)
	}

	run.ID = id
	return run, nil
}

// LastRunForChecksum returns the most recent run that imported a file with
// the given checksum, or nil if the file was never imported.
func (s *Store) LastRunForChecksum(ctx context.Context, checksum string) (*ImportRun, error) {
	query := `
		SELECT id, run_id, source, checksum, company_id, fiscal_period_id, accepted, duplicates, unparsed, failed, imported_at
		FROM import_runs
		WHERE checksum = ?
		ORDER BY imported_at DESC, id DESC
		LIMIT 1
	`

	var run ImportRun
	err := s.db.QueryRowContext(ctx, query, checksum).Scan(
		&run.ID,
		&run.RunID,
		&run.Source,
		&run.Checksum,
		&run.CompanyID,
		&run.FiscalPeriodID,
		&run.Accepted,
		&run.Duplicates,
		&run.Unparsed,
		&run.Failed,
		&run.ImportedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up import run: %w", err)
	}

	return &run, nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]ImportRun, error) {
	query := `
		SELECT id, run_id, source, checksum, company_id, fiscal_period_id, accepted, duplicates, unparsed, failed, imported_at
		FROM import_runs
		ORDER BY imported_at DESC, id DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list import runs: %w", err)
	}
	defer rows.Close()

	var runs []ImportRun
	for rows.Next() {
		var run ImportRun
		if err := rows.Scan(
			&run.ID,
			&run.RunID,
			&run.Source,
			&run.Checksum,
			&run.CompanyID,
			&run.FiscalPeriodID,
			&run.Accepted,
			&run.Duplicates,
			&run.Unparsed,
			&run.Failed,
			&run.ImportedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan import run: %w", err)
		}

		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate import runs: %w", err)
	}

	return runs, nil
}

// GetStats aggregates all recorded runs.
func (s *Store) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats

	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(accepted), 0),
		       COALESCE(SUM(duplicates), 0),
		       COALESCE(SUM(unparsed), 0),
		       COALESCE(SUM(failed), 0)
		FROM import_runs
	`

	if err := s.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalRuns,
		&stats.TotalAccepted,
		&stats.TotalDuplicates,
		&stats.TotalUnparsed,
		&stats.TotalFailed,
	); err != nil {
		return nil, fmt.Errorf("failed to get import stats: %w", err)
	}

	err := s.db.QueryRowContext(ctx, `SELECT MAX(imported_at) FROM import_runs`).Scan(&stats.LastImport)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get last import time: %w", err)
	}

	return &stats, nil
}
