// Package model defines the core domain models used throughout the application.
package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// TransferRecord is a single inter-facility transfer request as it arrives
// from the registry export. It is read-only input to the engine; derived
// fields live on ClassifiedRecord.
type TransferRecord struct {
	CreatedAt            time.Time  `json:"creation_time"`
	PlacementFoundAt     *time.Time `json:"placement_found_time,omitempty"`
	Status               Status     `json:"status"`
	RawStatus            string     `json:"raw_status,omitempty"` // Source vocabulary before mapping, kept for QA
	WaitDurationText     string     `json:"wait_duration_text,omitempty"`
	CancellationReason   string     `json:"cancellation_reason,omitempty"`
	CancelledBy          string     `json:"cancelled_by,omitempty"`
	SourceRegion         string     `json:"request_source_region,omitempty"`
	RequestedClinic      string     `json:"requested_clinic,omitempty"`
	RespiratoryTreatment string     `json:"respiratory_treatment,omitempty"`
	PatientRef           string     `json:"patient_ref,omitempty"`
}

// Resolved reports whether a receiving facility has been secured.
func (r *TransferRecord) Resolved() bool {
	return r.PlacementFoundAt != nil && !r.PlacementFoundAt.IsZero()
}

// GenerateHash creates a unique hash for duplicate detection on import.
func (r *TransferRecord) GenerateHash() string {
	placement := ""
	if r.PlacementFoundAt != nil {
		placement = r.PlacementFoundAt.Format(time.RFC3339)
	}
	data := fmt.Sprintf("%s:%s:%s:%s:%s",
		r.CreatedAt.Format(time.RFC3339),
		placement,
		r.PatientRef,
		r.RequestedClinic,
		r.SourceRegion)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// ClassifiedRecord is a TransferRecord annotated by the engine. The engine
// always works on copies; the caller's records are never mutated.
type ClassifiedRecord struct {
	TransferRecord
	CaseType CaseType   `json:"case_type"`
	Region   RegionCode `json:"region_group"`
}

// Valid reports whether the record counts toward case-mix statistics.
func (c *ClassifiedRecord) Valid() bool {
	return c.CaseType == CaseNew || c.CaseType == CaseCarriedOver
}
