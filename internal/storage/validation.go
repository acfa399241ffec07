package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"transferreport/internal/model"
)

// Validation errors.
var (
	ErrNilContext    = errors.New("context cannot be nil")
	ErrEmptyString   = errors.New("string parameter cannot be empty")
	ErrNilParameter  = errors.New("parameter cannot be nil")
	ErrInvalidRecord = errors.New("invalid transfer record")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateRecords validates a slice of transfer records.
func validateRecords(records []model.TransferRecord) error {
	if records == nil {
		return fmt.Errorf("%w: records", ErrNilParameter)
	}
	for i, rec := range records {
		if err := validateRecord(&rec); err != nil {
			return fmt.Errorf("record at index %d: %w", i, err)
		}
	}
	return nil
}

// validateRecord validates a single transfer record.
func validateRecord(rec *model.TransferRecord) error {
	if rec == nil {
		return fmt.Errorf("%w: record", ErrNilParameter)
	}
	if rec.CreatedAt.IsZero() {
		return fmt.Errorf("%w: missing creation time", ErrInvalidRecord)
	}
	if rec.Status == "" {
		return fmt.Errorf("%w: missing status", ErrInvalidRecord)
	}
	return nil
}
