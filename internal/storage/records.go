package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"transferreport/internal/model"
	"transferreport/internal/service"
)

// SaveRecords inserts transfer records, skipping duplicates by content hash.
// Returns the number of newly inserted records.
func (s *SQLiteStorage) SaveRecords(ctx context.Context, records []model.TransferRecord) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateRecords(records); err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO transfer_records (
			hash, patient_ref, created_at, placement_found_at, status,
			raw_status, wait_duration_text, cancellation_reason, cancelled_by,
			source_region, requested_clinic, respiratory_treatment
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	inserted := 0
	for i := range records {
		rec := &records[i]

		var placement any
		if rec.PlacementFoundAt != nil {
			placement = rec.PlacementFoundAt.UTC()
		}

		result, err := stmt.ExecContext(ctx,
			rec.GenerateHash(),
			rec.PatientRef,
			rec.CreatedAt.UTC(),
			placement,
			string(rec.Status),
			rec.RawStatus,
			rec.WaitDurationText,
			rec.CancellationReason,
			rec.CancelledBy,
			rec.SourceRegion,
			rec.RequestedClinic,
			rec.RespiratoryTreatment,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert record %d: %w", i, err)
		}
		if n, err := result.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit records: %w", err)
	}

	return inserted, nil
}

// GetRecords loads transfer records matching the filter, oldest first.
func (s *SQLiteStorage) GetRecords(ctx context.Context, filter service.RecordFilter) ([]model.TransferRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT patient_ref, created_at, placement_found_at, status, raw_status,
		       wait_duration_text, cancellation_reason, cancelled_by,
		       source_region, requested_clinic, respiratory_treatment
		FROM transfer_records`

	var conditions []string
	var args []any
	if filter.CreatedAfter != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, filter.CreatedAfter.UTC())
	}
	if filter.CreatedBefore != nil {
		conditions = append(conditions, "created_at < ?")
		args = append(args, filter.CreatedBefore.UTC())
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at ASC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.TransferRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return records, nil
}

// CountRecords returns the number of stored transfer records.
func (s *SQLiteStorage) CountRecords(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transfer_records`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

func scanRecord(rows *sql.Rows) (model.TransferRecord, error) {
	var rec model.TransferRecord
	var placement sql.NullTime
	var status string
	var patientRef, rawStatus, waitText, reason, cancelledBy sql.NullString
	var region, clinic, respiratory sql.NullString

	err := rows.Scan(
		&patientRef,
		&rec.CreatedAt,
		&placement,
		&status,
		&rawStatus,
		&waitText,
		&reason,
		&cancelledBy,
		&region,
		&clinic,
		&respiratory,
	)
	if err != nil {
		return rec, fmt.Errorf("failed to scan record: %w", err)
	}

	rec.PatientRef = patientRef.String
	rec.Status = model.Status(status)
	rec.RawStatus = rawStatus.String
	rec.WaitDurationText = waitText.String
	rec.CancellationReason = reason.String
	rec.CancelledBy = cancelledBy.String
	rec.SourceRegion = region.String
	rec.RequestedClinic = clinic.String
	rec.RespiratoryTreatment = respiratory.String
	if placement.Valid {
		t := placement.Time
		rec.PlacementFoundAt = &t
	}
	rec.CreatedAt = rec.CreatedAt.In(time.UTC)

	return rec, nil
}
