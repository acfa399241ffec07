package engine

import (
	"log/slog"

	"transferreport/internal/model"
)

// RegionGroups holds the three region views of a classified record set.
// Local and External are disjoint and together equal All.
type RegionGroups struct {
	Local    []model.ClassifiedRecord
	External []model.ClassifiedRecord
	All      []model.ClassifiedRecord
}

// PartitionByRegion stamps each record's region group and splits the set
// into local, external, and all views. A record is external only when its
// source region is present and differs from localRegion; a missing region
// defaults to local, the more common convention.
func PartitionByRegion(records []model.ClassifiedRecord, localRegion string) RegionGroups {
	groups := RegionGroups{
		All: make([]model.ClassifiedRecord, 0, len(records)),
	}

	for i := range records {
		if records[i].SourceRegion != "" && records[i].SourceRegion != localRegion {
			records[i].Region = model.RegionExternal
			groups.External = append(groups.External, records[i])
		} else {
			records[i].Region = model.RegionLocal
			groups.Local = append(groups.Local, records[i])
		}
		groups.All = append(groups.All, records[i])
	}

	slog.Info("region partition",
		"local", len(groups.Local),
		"external", len(groups.External),
		"all", len(groups.All))

	return groups
}
