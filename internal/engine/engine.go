package engine

import (
	"errors"
	"log/slog"
	"time"

	"transferreport/internal/common"
	"transferreport/internal/config"
	"transferreport/internal/model"
)

// Engine runs the full daily analysis: window resolution, classification,
// region partitioning, and every aggregate the report document carries.
// It is a pure batch computation over the given snapshot; concurrent
// invocations with different inputs are safe.
type Engine struct {
	cfg config.Config
}

// New creates an analysis engine with the given configuration.
func New(cfg config.Config) *Engine {
	return &Engine{cfg: cfg}
}

// Analyze produces the report for one analysis day over a snapshot of all
// known transfer records. The input slice is never mutated.
//
// A record set with no usable creation times cannot be classified: the
// report then carries the records unchanged, Classified is false, and a
// warning explains why. Callers handing the report downstream must check
// Classified.
func (e *Engine) Analyze(records []model.TransferRecord, day time.Time) (*model.Report, error) {
	window := WindowFor(day)
	slog.Info("starting daily analysis",
		"analysis_date", day.Format("2006-01-02"),
		"window", window.String(),
		"records", len(records))

	report := &model.Report{
		AnalysisDate: day.Format("2006-01-02"),
		GeneratedAt:  time.Now(),
		Window:       window,
		TotalRecords: len(records),
		Groups:       map[string]map[string]model.GroupReport{},
	}

	classified, err := Classify(records, window)
	if err != nil {
		if errors.Is(err, common.ErrMissingCreationTime) {
			report.Records = classified
			report.Warnings = append(report.Warnings,
				"no usable creation times in input; classification skipped")
			return report, nil
		}
		return nil, err
	}
	report.Classified = true

	groups := PartitionByRegion(classified, e.cfg.LocalRegion)
	report.Records = classified

	valid := validRecords(classified)
	report.ValidRecords = len(valid)
	report.CaseMix = CaseMixOf(classified)

	if len(valid) > 0 {
		report.Elapsed = ElapsedStatistics(valid, window.End)
		report.ClinicRankings = RankClinicsByResolution(valid)
	}

	for groupKey, groupRecords := range map[string][]model.ClassifiedRecord{
		model.GroupLocal:    groups.Local,
		model.GroupExternal: groups.External,
		model.GroupAll:      groups.All,
	} {
		if len(groupRecords) == 0 {
			continue
		}
		scopes := e.buildGroupScopes(groupRecords, window)
		if len(scopes) > 0 {
			report.Groups[groupKey] = scopes
		}
	}

	slog.Info("daily analysis complete",
		"valid", report.ValidRecords,
		"new", report.CaseMix.NewCount,
		"carried_over", report.CaseMix.CarriedOverCount)

	return report, nil
}

// buildGroupScopes computes the per-case-type statistic blocks for one
// region group. Empty scopes are omitted rather than reported as zeros.
func (e *Engine) buildGroupScopes(groupRecords []model.ClassifiedRecord, window model.AnalysisWindow) map[string]model.GroupReport {
	scopes := map[string]model.GroupReport{}

	for scopeKey, subset := range map[string][]model.ClassifiedRecord{
		model.ScopeNew:         filterCase(groupRecords, model.CaseNew),
		model.ScopeCarriedOver: filterCase(groupRecords, model.CaseCarriedOver),
		model.ScopeAll:         validRecords(groupRecords),
	} {
		if len(subset) == 0 {
			continue
		}

		cancelled := model.StatusCancelled
		gr := model.GroupReport{
			Records:            len(subset),
			StatusDistribution: StatusDistributionOf(subset),
			CancelledWait:      WaitStatistics(subset, &cancelled),
			Elapsed:            ElapsedStatistics(subset, window.End),
			Clinics:            ClinicBreakdowns(subset),
		}
		gr.ArrangedWait, gr.ArrangedThresholds = ArrangedWaitDistribution(subset)

		scopes[scopeKey] = gr
	}

	return scopes
}

func filterCase(records []model.ClassifiedRecord, caseType model.CaseType) []model.ClassifiedRecord {
	var out []model.ClassifiedRecord
	for i := range records {
		if records[i].CaseType == caseType {
			out = append(out, records[i])
		}
	}
	return out
}

func validRecords(records []model.ClassifiedRecord) []model.ClassifiedRecord {
	var out []model.ClassifiedRecord
	for i := range records {
		if records[i].Valid() {
			out = append(out, records[i])
		}
	}
	return out
}
