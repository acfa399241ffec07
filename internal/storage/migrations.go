package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS transfer_records (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					hash TEXT UNIQUE NOT NULL,
					patient_ref TEXT,
					created_at DATETIME NOT NULL,
					placement_found_at DATETIME,
					status TEXT NOT NULL,
					raw_status TEXT,
					wait_duration_text TEXT,
					cancellation_reason TEXT,
					cancelled_by TEXT,
					source_region TEXT,
					requested_clinic TEXT,
					respiratory_treatment TEXT,
					imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_transfer_records_created ON transfer_records(created_at)`,
				`CREATE INDEX idx_transfer_records_status ON transfer_records(status)`,
				`CREATE INDEX idx_transfer_records_hash ON transfer_records(hash)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Generated report documents",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS reports (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					analysis_date TEXT NOT NULL,
					generated_at DATETIME NOT NULL,
					document TEXT NOT NULL
				)`,
				`CREATE INDEX idx_reports_date ON reports(analysis_date)`,
			}
			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate brings the database schema up to the expected version.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_versions (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("failed to create schema_versions table: %w", err)
	}

	var current int
	err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_versions`).Scan(&current)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= current {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Description, err)
		}

		if _, err := tx.Exec(`INSERT INTO schema_versions (version) VALUES (?)`, migration.Version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}

		slog.Info("applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	return nil
}
