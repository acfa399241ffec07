package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"transferreport/internal/common"
	"transferreport/internal/model"
)

// SaveReport stores a generated report as its serialized JSON document.
// Re-running an analysis for the same date adds a new row; GetReport returns
// the most recent one.
func (s *SQLiteStorage) SaveReport(ctx context.Context, report *model.Report) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if report == nil {
		return fmt.Errorf("%w: report", ErrNilParameter)
	}
	if err := validateString(report.AnalysisDate, "analysis date"); err != nil {
		return err
	}

	document, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reports (analysis_date, generated_at, document)
		VALUES (?, ?, ?)`,
		report.AnalysisDate,
		report.GeneratedAt.UTC(),
		string(document),
	)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	return nil
}

// GetReport loads the most recent report for an analysis date.
func (s *SQLiteStorage) GetReport(ctx context.Context, analysisDate string) (*model.Report, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(analysisDate, "analysis date"); err != nil {
		return nil, err
	}

	var document string
	err := s.db.QueryRowContext(ctx, `
		SELECT document FROM reports
		WHERE analysis_date = ?
		ORDER BY generated_at DESC, id DESC
		LIMIT 1`, analysisDate).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("report for %s: %w", analysisDate, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load report: %w", err)
	}

	var report model.Report
	if err := json.Unmarshal([]byte(document), &report); err != nil {
		return nil, fmt.Errorf("failed to deserialize report: %w", err)
	}

	return &report, nil
}
