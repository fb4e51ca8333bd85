// Package history provides SQLite storage for statement import runs, so
// repeat imports of the same file can be spotted and summarized offline.
package history

// Schema defines the SQL statements to create the history tables.
const Schema = `
-- Import run table
-- One row per ingested statement file
CREATE TABLE IF NOT EXISTS import_runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL UNIQUE,       -- UUID assigned to the run
    source TEXT NOT NULL,              -- statement file path
    checksum TEXT NOT NULL,            -- SHA-256 of the file bytes
    company_id INTEGER NOT NULL,
    fiscal_period_id INTEGER NOT NULL,
    accepted INTEGER NOT NULL,
    duplicates INTEGER NOT NULL,
    unparsed INTEGER NOT NULL,
    failed INTEGER NOT NULL,
    imported_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_import_runs_checksum
    ON import_runs(checksum);

CREATE INDEX IF NOT EXISTS idx_import_runs_company
    ON import_runs(company_id, fiscal_period_id);
`
