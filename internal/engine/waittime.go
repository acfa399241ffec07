package engine

import (
	"math"
	"sort"
	"time"

	"transferreport/internal/model"
)

// The seven fixed threshold buckets. Each interval is inclusive on its upper
// edge; together they are disjoint and cover [0, inf).
var thresholdBuckets = []struct {
	label      string
	upperHours float64
}{
	{"0-30 minutes", 0.5},
	{"30 minutes - 1 hour", 1},
	{"1-2 hours", 2},
	{"2-4 hours", 4},
	{"4-8 hours", 8},
	{"8-24 hours", 24},
	{"24+ hours", math.Inf(1)},
}

// waitHours computes the placement wait in hours. Records without both
// timestamps, or with a negative difference (data-quality noise), do not
// qualify.
func waitHours(rec *model.TransferRecord) (float64, bool) {
	if rec.PlacementFoundAt == nil || rec.CreatedAt.IsZero() {
		return 0, false
	}
	h := rec.PlacementFoundAt.Sub(rec.CreatedAt).Hours()
	if h < 0 {
		return 0, false
	}
	return h, true
}

// WaitStatistics computes descriptive wait-time statistics over a record
// subset, optionally restricted to one status. Returns nil when no record
// qualifies; "no data" is never reported as zero.
func WaitStatistics(records []model.ClassifiedRecord, statusFilter *model.Status) *model.WaitStats {
	var hours []float64
	for i := range records {
		if statusFilter != nil && records[i].Status != *statusFilter {
			continue
		}
		if h, ok := waitHours(&records[i].TransferRecord); ok {
			hours = append(hours, h)
		}
	}
	return summarizeHours(hours)
}

// ThresholdCounts buckets wait-hour values into the seven fixed ranges.
// Every value falls into exactly one bucket, so the counts always sum to
// len(hours).
func ThresholdCounts(hours []float64) []model.ThresholdBucket {
	counts := make([]int, len(thresholdBuckets))
	for _, h := range hours {
		lower := 0.0
		for i, bucket := range thresholdBuckets {
			if h <= bucket.upperHours && (i == 0 || h > lower) {
				counts[i]++
				break
			}
			lower = bucket.upperHours
		}
	}

	out := make([]model.ThresholdBucket, len(thresholdBuckets))
	for i, bucket := range thresholdBuckets {
		out[i] = model.ThresholdBucket{Label: bucket.label, Count: counts[i]}
	}
	return out
}

// ArrangedWaitDistribution computes wait statistics plus the threshold
// distribution for placement-arranged records. Both results are nil when no
// arranged record has a qualifying wait time.
func ArrangedWaitDistribution(records []model.ClassifiedRecord) (*model.WaitStats, []model.ThresholdBucket) {
	var hours []float64
	for i := range records {
		if records[i].Status != model.StatusArranged {
			continue
		}
		if h, ok := waitHours(&records[i].TransferRecord); ok {
			hours = append(hours, h)
		}
	}
	if len(hours) == 0 {
		return nil, nil
	}
	return summarizeHours(hours), ThresholdCounts(hours)
}

// ElapsedStatistics aggregates elapsed time over an entire classified set:
// records with a placement are resolved and measured creation-to-placement;
// records still actively searching are measured creation-to-asOf. The engine
// passes the window end as asOf so repeated runs are reproducible.
func ElapsedStatistics(records []model.ClassifiedRecord, asOf time.Time) *model.ElapsedStats {
	stats := &model.ElapsedStats{TotalCases: len(records)}

	type clinicAccum struct {
		total         int
		resolvedHours []float64
		waitingHours  []float64
	}
	perClinic := map[string]*clinicAccum{}

	var resolvedHours, waitingHours []float64
	for i := range records {
		rec := &records[i]
		if rec.CreatedAt.IsZero() {
			continue
		}

		var accum *clinicAccum
		if rec.RequestedClinic != "" {
			accum = perClinic[rec.RequestedClinic]
			if accum == nil {
				accum = &clinicAccum{}
				perClinic[rec.RequestedClinic] = accum
			}
			accum.total++
		}

		switch {
		case rec.Resolved():
			if h, ok := waitHours(&rec.TransferRecord); ok {
				resolvedHours = append(resolvedHours, h)
				if accum != nil {
					accum.resolvedHours = append(accum.resolvedHours, h)
				}
			}
		case rec.Status == model.StatusSearching:
			if h := asOf.Sub(rec.CreatedAt).Hours(); h >= 0 {
				waitingHours = append(waitingHours, h)
				if accum != nil {
					accum.waitingHours = append(accum.waitingHours, h)
				}
			}
		}
	}

	stats.ResolvedCases = len(resolvedHours)
	stats.WaitingCases = len(waitingHours)
	stats.Resolution = summarizeHours(resolvedHours)
	stats.Waiting = summarizeHours(waitingHours)

	if len(perClinic) > 0 {
		stats.PerClinic = make(map[string]model.ClinicElapsed, len(perClinic))
		for clinic, accum := range perClinic {
			entry := model.ClinicElapsed{
				Total:    accum.total,
				Resolved: len(accum.resolvedHours),
				Waiting:  len(accum.waitingHours),
			}
			if s := summarizeHours(accum.resolvedHours); s != nil {
				mean := s.MeanHours
				entry.ResolutionMeanHours = &mean
			}
			if s := summarizeHours(accum.waitingHours); s != nil {
				mean := s.MeanHours
				entry.WaitingMeanHours = &mean
			}
			stats.PerClinic[clinic] = entry
		}
	}

	return stats
}

// summarizeHours reduces a set of wait-hour values to descriptive
// statistics, or nil when there is nothing to summarize.
func summarizeHours(hours []float64) *model.WaitStats {
	if len(hours) == 0 {
		return nil
	}

	sorted := make([]float64, len(hours))
	copy(sorted, hours)
	sort.Float64s(sorted)

	sum := 0.0
	for _, h := range sorted {
		sum += h
	}

	mid := len(sorted) / 2
	median := sorted[mid]
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}

	return &model.WaitStats{
		Count:       len(sorted),
		MeanHours:   sum / float64(len(sorted)),
		MedianHours: median,
		MinHours:    sorted[0],
		MaxHours:    sorted[len(sorted)-1],
	}
}
