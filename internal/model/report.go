package model

import "time"

// Group scope keys used in the nested report document.
const (
	GroupLocal    = "local"
	GroupExternal = "external"
	GroupAll      = "all"
)

// Case scope keys used in the nested report document.
const (
	ScopeNew         = "new"
	ScopeCarriedOver = "carried_over"
	ScopeAll         = "all"
)

// WaitStats holds descriptive statistics over wait hours. A nil *WaitStats
// means "no qualifying data", which is distinct from a zero-valued one.
type WaitStats struct {
	Count       int     `json:"count"`
	MeanHours   float64 `json:"mean_hours"`
	MedianHours float64 `json:"median_hours"`
	MinHours    float64 `json:"min_hours"`
	MaxHours    float64 `json:"max_hours"`
}

// ThresholdBucket is one of the seven fixed wait-time ranges used to
// summarize the resolution-time distribution.
type ThresholdBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CaseMix summarizes New vs CarriedOver among non-excluded records.
// Percentages use only valid records as denominator and are zero when no
// valid records exist.
type CaseMix struct {
	NewCount           int     `json:"new_count"`
	CarriedOverCount   int     `json:"carried_over_count"`
	TotalValid         int     `json:"total_valid"`
	NewPercent         float64 `json:"new_percent"`
	CarriedOverPercent float64 `json:"carried_over_percent"`
}

// StatusDistribution is the per-status headcount of a record subset.
type StatusDistribution struct {
	Total    int                `json:"total"`
	Counts   map[Status]int     `json:"counts"`
	Percents map[Status]float64 `json:"percents"`
}

// ClinicBreakdown summarizes one requested clinic within a record subset.
type ClinicBreakdown struct {
	Clinic     string           `json:"clinic"`
	Total      int              `json:"total"`
	CaseCounts map[CaseType]int `json:"case_counts"`
	Wait       *WaitStats       `json:"wait,omitempty"`
}

// ClinicElapsed carries per-clinic resolved/waiting elapsed-time summaries.
type ClinicElapsed struct {
	Total               int      `json:"total"`
	Resolved            int      `json:"resolved"`
	Waiting             int      `json:"waiting"`
	ResolutionMeanHours *float64 `json:"resolution_mean_hours,omitempty"`
	WaitingMeanHours    *float64 `json:"waiting_mean_hours,omitempty"`
}

// ElapsedStats splits a record set into resolved and still-waiting cases and
// aggregates elapsed time for each, overall and per clinic. Still-waiting
// elapsed time is measured to the window end so results are reproducible.
type ElapsedStats struct {
	TotalCases    int                      `json:"total_cases"`
	ResolvedCases int                      `json:"resolved_cases"`
	WaitingCases  int                      `json:"waiting_cases"`
	Resolution    *WaitStats               `json:"resolution,omitempty"`
	Waiting       *WaitStats               `json:"waiting,omitempty"`
	PerClinic     map[string]ClinicElapsed `json:"per_clinic,omitempty"`
}

// ClinicRanking ranks one clinic by mean resolution time. Rankings carry the
// sample size; callers decide the minimum sample they trust.
type ClinicRanking struct {
	Clinic    string  `json:"clinic"`
	Count     int     `json:"count"`
	MeanHours float64 `json:"mean_hours"`
}

// GroupReport is the statistics block for one region group and case scope.
type GroupReport struct {
	Records            int                 `json:"records"`
	StatusDistribution *StatusDistribution `json:"status_distribution,omitempty"`
	CancelledWait      *WaitStats          `json:"cancelled_wait,omitempty"`
	ArrangedWait       *WaitStats          `json:"arranged_wait,omitempty"`
	ArrangedThresholds []ThresholdBucket   `json:"arranged_thresholds,omitempty"`
	Elapsed            *ElapsedStats       `json:"elapsed,omitempty"`
	Clinics            []ClinicBreakdown   `json:"clinics,omitempty"`
}

// Report is the full analysis output for one day: the annotated record set
// plus every aggregate the downstream chart and document generators consume.
// It serializes to a nested JSON document.
type Report struct {
	AnalysisDate   string                            `json:"analysis_date"`
	GeneratedAt    time.Time                         `json:"generated_at"`
	Window         AnalysisWindow                    `json:"window"`
	Classified     bool                              `json:"classified"`
	TotalRecords   int                               `json:"total_records"`
	ValidRecords   int                               `json:"valid_records"`
	CaseMix        CaseMix                           `json:"case_mix"`
	Groups         map[string]map[string]GroupReport `json:"groups"`
	Elapsed        *ElapsedStats                     `json:"elapsed,omitempty"`
	ClinicRankings []ClinicRanking                   `json:"clinic_rankings,omitempty"`
	Records        []ClassifiedRecord                `json:"records"`
	Warnings       []string                          `json:"warnings,omitempty"`
}
