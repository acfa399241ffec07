// Package ingest reads transfer-request registry exports and normalizes
// them into domain records. The engine never touches spreadsheets; it
// consumes the record slices produced here.
package ingest

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"transferreport/internal/common"
	"transferreport/internal/config"
	"transferreport/internal/model"
)

// Column roles in the registry export.
const (
	colCreated     = "created"
	colPlacement   = "placement"
	colStatus      = "status"
	colWaitText    = "wait_text"
	colReason      = "reason"
	colCancelledBy = "cancelled_by"
	colRegion      = "region"
	colClinic      = "clinic"
	colRespiratory = "respiratory"
	colPatientRef  = "patient_ref"
)

// headerAliases maps lowercased export headers onto column roles. Registry
// exports are hand-maintained, so several spellings appear in the wild.
var headerAliases = map[string]string{
	"creation time":         colCreated,
	"creation date":         colCreated,
	"created at":            colCreated,
	"request time":          colCreated,
	"placement found time":  colPlacement,
	"placement found date":  colPlacement,
	"placement time":        colPlacement,
	"status":                colStatus,
	"wait duration":         colWaitText,
	"waiting time":          colWaitText,
	"cancellation reason":   colReason,
	"cancelled by":          colCancelledBy,
	"request source":        colRegion,
	"request source region": colRegion,
	"source region":         colRegion,
	"requested clinic":      colClinic,
	"clinic":                colClinic,
	"respiratory treatment": colRespiratory,
	"patient ref":           colPatientRef,
	"patient":               colPatientRef,
}

// Timestamp layouts seen in registry exports, most common first.
var timestampLayouts = []string{
	"02-01-2006 15:04:05",
	"02-01-2006 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"02.01.2006 15:04:05",
	"02/01/2006 15:04:05",
	"2006-01-02",
}

// Reader loads registry XLSX exports into transfer records. It implements
// service.RecordSource.
type Reader struct {
	cfg config.Config
}

// NewReader creates a reader with the given configuration.
func NewReader(cfg config.Config) *Reader {
	return &Reader{cfg: cfg}
}

// ReadRecords reads the first sheet of an XLSX export, resolves headers,
// parses rows leniently, and applies the configured normalizations. Rows
// whose cells cannot be parsed keep zero values; nothing short of an
// unreadable workbook fails the whole import.
func (r *Reader) ReadRecords(path string) ([]model.TransferRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("failed to close workbook", "error", closeErr)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, common.ErrEmptyWorkbook
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, common.ErrEmptyWorkbook
	}

	columns := resolveHeaders(rows[0])
	if _, ok := columns[colCreated]; !ok {
		return nil, fmt.Errorf("%w: creation time", common.ErrMissingHeaders)
	}

	records := make([]model.TransferRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		records = append(records, r.parseRow(row, columns))
	}

	slog.Info("workbook read",
		"path", path,
		"sheet", sheets[0],
		"records", len(records))

	return Normalize(records, r.cfg), nil
}

// resolveHeaders maps column roles to cell indexes via the alias table.
func resolveHeaders(header []string) map[string]int {
	columns := map[string]int{}
	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		if role, ok := headerAliases[name]; ok {
			if _, seen := columns[role]; !seen {
				columns[role] = i
			}
		}
	}
	return columns
}

func (r *Reader) parseRow(row []string, columns map[string]int) model.TransferRecord {
	rec := model.TransferRecord{
		RawStatus:            cell(row, columns, colStatus),
		WaitDurationText:     cell(row, columns, colWaitText),
		CancellationReason:   cell(row, columns, colReason),
		CancelledBy:          cell(row, columns, colCancelledBy),
		SourceRegion:         cell(row, columns, colRegion),
		RequestedClinic:      cell(row, columns, colClinic),
		RespiratoryTreatment: cell(row, columns, colRespiratory),
		PatientRef:           cell(row, columns, colPatientRef),
	}

	rec.CreatedAt = parseTimestamp(cell(row, columns, colCreated))
	if t := parseTimestamp(cell(row, columns, colPlacement)); !t.IsZero() {
		rec.PlacementFoundAt = &t
	}
	rec.Status = r.cfg.MapStatus(rec.RawStatus)

	return rec
}

func cell(row []string, columns map[string]int, role string) string {
	idx, ok := columns[role]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseTimestamp tries the known layouts; an unparseable value yields the
// zero time rather than an error.
func parseTimestamp(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	slog.Warn("unparseable timestamp", "value", value)
	return time.Time{}
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
