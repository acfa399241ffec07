package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transferreport/internal/model"
)

func TestPartitionByRegion(t *testing.T) {
	records := []model.ClassifiedRecord{
		{TransferRecord: model.TransferRecord{SourceRegion: "Local", PatientRef: "a"}},
		{TransferRecord: model.TransferRecord{SourceRegion: "Neighboring Province", PatientRef: "b"}},
		{TransferRecord: model.TransferRecord{SourceRegion: "", PatientRef: "c"}},
		{TransferRecord: model.TransferRecord{SourceRegion: "Local", PatientRef: "d"}},
	}

	groups := PartitionByRegion(records, "Local")

	assert.Len(t, groups.Local, 3)
	assert.Len(t, groups.External, 1)
	assert.Len(t, groups.All, 4)
	assert.Equal(t, "b", groups.External[0].PatientRef)
}

func TestPartitionByRegionMissingRegionDefaultsToLocal(t *testing.T) {
	records := []model.ClassifiedRecord{
		{TransferRecord: model.TransferRecord{PatientRef: "a"}},
	}

	groups := PartitionByRegion(records, "Local")

	require.Len(t, groups.Local, 1)
	assert.Equal(t, model.RegionLocal, groups.Local[0].Region)
	assert.Empty(t, groups.External)
}

// Local and External must be disjoint and together cover the input exactly.
func TestPartitionByRegionIsAPartition(t *testing.T) {
	records := []model.ClassifiedRecord{
		{TransferRecord: model.TransferRecord{SourceRegion: "Local", PatientRef: "a"}},
		{TransferRecord: model.TransferRecord{SourceRegion: "East", PatientRef: "b"}},
		{TransferRecord: model.TransferRecord{SourceRegion: "West", PatientRef: "c"}},
		{TransferRecord: model.TransferRecord{PatientRef: "d"}},
	}

	groups := PartitionByRegion(records, "Local")

	assert.Equal(t, len(groups.All), len(groups.Local)+len(groups.External))

	seen := map[string]model.RegionCode{}
	for _, rec := range groups.Local {
		seen[rec.PatientRef] = rec.Region
	}
	for _, rec := range groups.External {
		_, dup := seen[rec.PatientRef]
		assert.False(t, dup, "record %s in both partitions", rec.PatientRef)
		seen[rec.PatientRef] = rec.Region
	}

	for _, rec := range groups.All {
		region, ok := seen[rec.PatientRef]
		require.True(t, ok)
		assert.Equal(t, region, rec.Region)
	}
}

func TestPartitionByRegionEmpty(t *testing.T) {
	groups := PartitionByRegion(nil, "Local")

	assert.Empty(t, groups.Local)
	assert.Empty(t, groups.External)
	assert.Empty(t, groups.All)
}
