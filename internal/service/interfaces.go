// Package service defines the interfaces between the engine and its
// collaborators.
package service

import (
	"context"
	"time"

	"transferreport/internal/model"
)

// RecordFilter defines filtering options for record queries.
type RecordFilter struct {
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	Limit         int
}

// Storage defines the contract for the persistence layer.
type Storage interface {
	// Record operations
	SaveRecords(ctx context.Context, records []model.TransferRecord) (int, error)
	GetRecords(ctx context.Context, filter RecordFilter) ([]model.TransferRecord, error)
	CountRecords(ctx context.Context) (int, error)

	// Report operations
	SaveReport(ctx context.Context, report *model.Report) error
	GetReport(ctx context.Context, analysisDate string) (*model.Report, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// RecordSource reads transfer records from an external registry export.
// Spreadsheet parsing and column normalization live behind this seam; the
// engine itself consumes plain record slices.
type RecordSource interface {
	ReadRecords(path string) ([]model.TransferRecord, error)
}
