package engine

import (
	"log/slog"

	"transferreport/internal/common"
	"transferreport/internal/model"
)

// Classify labels every record as New, CarriedOver, or Excluded relative to
// the analysis window. It operates on copies; the caller's records are never
// mutated, and each record's classification is set exactly once.
//
// When the record set has no usable creation times at all, no classification
// is performed: the records are returned unchanged alongside
// common.ErrMissingCreationTime, which callers must check explicitly.
func Classify(records []model.TransferRecord, window model.AnalysisWindow) ([]model.ClassifiedRecord, error) {
	out := make([]model.ClassifiedRecord, len(records))
	usable := 0
	for i, rec := range records {
		out[i] = model.ClassifiedRecord{TransferRecord: rec}
		if !rec.CreatedAt.IsZero() {
			usable++
		}
	}

	if len(records) > 0 && usable == 0 {
		slog.Warn("no usable creation times, classification skipped", "records", len(records))
		return out, common.ErrMissingCreationTime
	}

	counts := map[model.CaseType]int{}
	for i := range out {
		out[i].CaseType = classifyOne(&out[i].TransferRecord, window)
		counts[out[i].CaseType]++
	}

	slog.Info("records classified",
		"window", window.String(),
		"new", counts[model.CaseNew],
		"carried_over", counts[model.CaseCarriedOver],
		"excluded", counts[model.CaseExcluded])

	return out, nil
}

// classifyOne applies the exclusion filters, then the classification rules,
// to a single record.
func classifyOne(rec *model.TransferRecord, window model.AnalysisWindow) model.CaseType {
	if rec.CreatedAt.IsZero() {
		slog.Warn("record missing creation time, excluded", "patient_ref", rec.PatientRef)
		return model.CaseExcluded
	}

	// Stale completion: resolved more than a day before the window opened.
	staleCutoff := window.Start.AddDate(0, 0, -1)
	if rec.PlacementFoundAt != nil && rec.PlacementFoundAt.Before(staleCutoff) {
		return model.CaseExcluded
	}

	// Stale cancellation: reconstructed cancellation instant precedes the
	// window. Only fires when the wait text actually parses; an unknown
	// duration keeps the record as a candidate.
	if rec.Status == model.StatusCancelled {
		if wait, ok := ParseWaitDuration(rec.WaitDurationText); ok {
			if rec.CreatedAt.Add(wait).Before(window.Start) {
				return model.CaseExcluded
			}
		}
	}

	// New has no upper bound against the window end: a record created after
	// the window closes still counts as new for this report.
	if !rec.CreatedAt.Before(window.Start) {
		return model.CaseNew
	}

	// Older record still actively awaiting placement always carries over.
	if rec.Status == model.StatusSearching {
		return model.CaseCarriedOver
	}

	// Still live at window open by the record's own wait bookkeeping.
	if wait, ok := ParseWaitDuration(rec.WaitDurationText); ok {
		if rec.CreatedAt.Add(wait).After(window.Start) {
			return model.CaseCarriedOver
		}
	}

	// Resolved during this exact window.
	if rec.Status == model.StatusArranged && rec.PlacementFoundAt != nil &&
		window.Contains(*rec.PlacementFoundAt) {
		return model.CaseCarriedOver
	}

	return model.CaseExcluded
}
