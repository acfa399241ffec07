package engine

import (
	"math"
	"sort"

	"transferreport/internal/model"
)

// CaseMixOf counts New and CarriedOver records and their share of the valid
// total. Excluded records are outside the denominator entirely; with no
// valid records both percentages are zero, never a division error.
func CaseMixOf(records []model.ClassifiedRecord) model.CaseMix {
	mix := model.CaseMix{}
	for i := range records {
		switch records[i].CaseType {
		case model.CaseNew:
			mix.NewCount++
		case model.CaseCarriedOver:
			mix.CarriedOverCount++
		}
	}

	mix.TotalValid = mix.NewCount + mix.CarriedOverCount
	if mix.TotalValid > 0 {
		mix.NewPercent = round1(float64(mix.NewCount) / float64(mix.TotalValid) * 100)
		mix.CarriedOverPercent = round1(float64(mix.CarriedOverCount) / float64(mix.TotalValid) * 100)
	}
	return mix
}

// StatusDistributionOf tallies records per status. Nil when the subset is
// empty.
func StatusDistributionOf(records []model.ClassifiedRecord) *model.StatusDistribution {
	if len(records) == 0 {
		return nil
	}

	dist := &model.StatusDistribution{
		Total:    len(records),
		Counts:   map[model.Status]int{},
		Percents: map[model.Status]float64{},
	}
	for i := range records {
		dist.Counts[records[i].Status]++
	}
	for status, count := range dist.Counts {
		dist.Percents[status] = round1(float64(count) / float64(dist.Total) * 100)
	}
	return dist
}

// ClinicBreakdowns summarizes each requested clinic in a record subset:
// headcount, case-type split, and wait statistics. Records without a clinic
// are skipped. Sorted by headcount, largest first.
func ClinicBreakdowns(records []model.ClassifiedRecord) []model.ClinicBreakdown {
	byClinic := map[string][]model.ClassifiedRecord{}
	for i := range records {
		if records[i].RequestedClinic == "" {
			continue
		}
		byClinic[records[i].RequestedClinic] = append(byClinic[records[i].RequestedClinic], records[i])
	}
	if len(byClinic) == 0 {
		return nil
	}

	out := make([]model.ClinicBreakdown, 0, len(byClinic))
	for clinic, subset := range byClinic {
		breakdown := model.ClinicBreakdown{
			Clinic:     clinic,
			Total:      len(subset),
			CaseCounts: map[model.CaseType]int{},
			Wait:       WaitStatistics(subset, nil),
		}
		for i := range subset {
			breakdown.CaseCounts[subset[i].CaseType]++
		}
		out = append(out, breakdown)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Clinic < out[j].Clinic
	})
	return out
}

// RankClinicsByResolution ranks clinics by mean resolution time, fastest
// first. Low-sample clinics are not suppressed here; rankings carry the
// sample size so callers can apply their own threshold.
func RankClinicsByResolution(records []model.ClassifiedRecord) []model.ClinicRanking {
	hoursByClinic := map[string][]float64{}
	for i := range records {
		if records[i].RequestedClinic == "" {
			continue
		}
		if h, ok := waitHours(&records[i].TransferRecord); ok {
			hoursByClinic[records[i].RequestedClinic] = append(hoursByClinic[records[i].RequestedClinic], h)
		}
	}
	if len(hoursByClinic) == 0 {
		return nil
	}

	out := make([]model.ClinicRanking, 0, len(hoursByClinic))
	for clinic, hours := range hoursByClinic {
		stats := summarizeHours(hours)
		out = append(out, model.ClinicRanking{
			Clinic:    clinic,
			Count:     stats.Count,
			MeanHours: stats.MeanHours,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].MeanHours != out[j].MeanHours {
			return out[i].MeanHours < out[j].MeanHours
		}
		return out[i].Clinic < out[j].Clinic
	})
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
