package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transferreport/internal/model"
)

func classifiedAs(caseType model.CaseType) model.ClassifiedRecord {
	return model.ClassifiedRecord{
		TransferRecord: model.TransferRecord{CreatedAt: ts(4, 10), Status: model.StatusSearching},
		CaseType:       caseType,
	}
}

func TestCaseMixOf(t *testing.T) {
	records := []model.ClassifiedRecord{
		classifiedAs(model.CaseNew),
		classifiedAs(model.CaseNew),
		classifiedAs(model.CaseCarriedOver),
		classifiedAs(model.CaseExcluded),
	}

	mix := CaseMixOf(records)
	assert.Equal(t, 2, mix.NewCount)
	assert.Equal(t, 1, mix.CarriedOverCount)
	assert.Equal(t, 3, mix.TotalValid)
	assert.InDelta(t, 66.7, mix.NewPercent, 1e-9)
	assert.InDelta(t, 33.3, mix.CarriedOverPercent, 1e-9)
}

func TestCaseMixOfZeroDenominator(t *testing.T) {
	records := []model.ClassifiedRecord{
		classifiedAs(model.CaseExcluded),
		classifiedAs(model.CaseExcluded),
	}

	mix := CaseMixOf(records)
	assert.Zero(t, mix.TotalValid)
	assert.Zero(t, mix.NewPercent)
	assert.Zero(t, mix.CarriedOverPercent)
}

func TestCaseMixOfExcludedOutsideDenominator(t *testing.T) {
	records := []model.ClassifiedRecord{
		classifiedAs(model.CaseNew),
		classifiedAs(model.CaseExcluded),
		classifiedAs(model.CaseExcluded),
		classifiedAs(model.CaseExcluded),
	}

	mix := CaseMixOf(records)
	assert.Equal(t, 1, mix.TotalValid)
	assert.InDelta(t, 100.0, mix.NewPercent, 1e-9)
}

func TestStatusDistributionOf(t *testing.T) {
	records := []model.ClassifiedRecord{
		{TransferRecord: model.TransferRecord{Status: model.StatusSearching}},
		{TransferRecord: model.TransferRecord{Status: model.StatusSearching}},
		{TransferRecord: model.TransferRecord{Status: model.StatusArranged}},
		{TransferRecord: model.TransferRecord{Status: model.StatusCancelled}},
	}

	dist := StatusDistributionOf(records)
	require.NotNil(t, dist)
	assert.Equal(t, 4, dist.Total)
	assert.Equal(t, 2, dist.Counts[model.StatusSearching])
	assert.InDelta(t, 50.0, dist.Percents[model.StatusSearching], 1e-9)
	assert.InDelta(t, 25.0, dist.Percents[model.StatusArranged], 1e-9)
}

func TestStatusDistributionOfEmpty(t *testing.T) {
	assert.Nil(t, StatusDistributionOf(nil))
}

func TestClinicBreakdowns(t *testing.T) {
	base := ts(4, 10)
	records := []model.ClassifiedRecord{
		arrangedRecord(base, 2, "Cardiology"),
		arrangedRecord(base, 4, "Cardiology"),
		arrangedRecord(base, 6, "Neurology"),
		{TransferRecord: model.TransferRecord{CreatedAt: base, Status: model.StatusSearching}},
	}
	records[0].CaseType = model.CaseNew
	records[1].CaseType = model.CaseCarriedOver
	records[2].CaseType = model.CaseNew

	breakdowns := ClinicBreakdowns(records)
	require.Len(t, breakdowns, 2)

	// Sorted by headcount, largest first.
	assert.Equal(t, "Cardiology", breakdowns[0].Clinic)
	assert.Equal(t, 2, breakdowns[0].Total)
	assert.Equal(t, 1, breakdowns[0].CaseCounts[model.CaseNew])
	assert.Equal(t, 1, breakdowns[0].CaseCounts[model.CaseCarriedOver])
	require.NotNil(t, breakdowns[0].Wait)
	assert.InDelta(t, 3.0, breakdowns[0].Wait.MeanHours, 1e-9)

	assert.Equal(t, "Neurology", breakdowns[1].Clinic)
}

func TestClinicBreakdownsSkipsBlankClinic(t *testing.T) {
	records := []model.ClassifiedRecord{
		{TransferRecord: model.TransferRecord{CreatedAt: ts(4, 10), Status: model.StatusSearching}},
	}

	assert.Nil(t, ClinicBreakdowns(records))
}

func TestRankClinicsByResolution(t *testing.T) {
	base := ts(4, 10)
	records := []model.ClassifiedRecord{
		arrangedRecord(base, 10, "Neurology"),
		arrangedRecord(base, 2, "Cardiology"),
		arrangedRecord(base, 4, "Cardiology"),
		arrangedRecord(base, 3, "Orthopedics"),
	}

	rankings := RankClinicsByResolution(records)
	require.Len(t, rankings, 3)

	// Fastest mean resolution first; sample size carried alongside.
	assert.Equal(t, "Cardiology", rankings[0].Clinic)
	assert.Equal(t, 2, rankings[0].Count)
	assert.InDelta(t, 3.0, rankings[0].MeanHours, 1e-9)
	assert.Equal(t, "Orthopedics", rankings[1].Clinic)
	assert.Equal(t, "Neurology", rankings[2].Clinic)
}

func TestRankClinicsByResolutionTiesBreakByName(t *testing.T) {
	base := ts(4, 10)
	records := []model.ClassifiedRecord{
		arrangedRecord(base, 5, "Urology"),
		arrangedRecord(base, 5, "Cardiology"),
	}

	rankings := RankClinicsByResolution(records)
	require.Len(t, rankings, 2)
	assert.Equal(t, "Cardiology", rankings[0].Clinic)
	assert.Equal(t, "Urology", rankings[1].Clinic)
}

func TestRankClinicsByResolutionNoResolvedRecords(t *testing.T) {
	records := []model.ClassifiedRecord{
		{TransferRecord: model.TransferRecord{
			CreatedAt:       ts(4, 10),
			Status:          model.StatusSearching,
			RequestedClinic: "Cardiology",
		}},
	}

	assert.Nil(t, RankClinicsByResolution(records))
}
