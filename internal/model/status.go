package model

// Status is the lifecycle state of a transfer request. Source exports carry
// free-text status labels; ingestion maps them onto this closed set so a typo
// surfaces as StatusUnknown instead of silently matching no rule.
type Status string

// Transfer request statuses.
const (
	StatusSearching Status = "SEARCHING_FOR_PLACEMENT"
	StatusArranged  Status = "PLACEMENT_ARRANGED"
	StatusCancelled Status = "CANCELLED"
	StatusUnknown   Status = "UNKNOWN"
)

// Known reports whether the status carries classification semantics.
func (s Status) Known() bool {
	switch s {
	case StatusSearching, StatusArranged, StatusCancelled:
		return true
	default:
		return false
	}
}

// CaseType is the engine's classification of a record relative to one
// analysis window. Set exactly once per analysis; immutable afterwards.
type CaseType string

// Case classifications.
const (
	CaseNew         CaseType = "NEW"
	CaseCarriedOver CaseType = "CARRIED_OVER"
	CaseExcluded    CaseType = "EXCLUDED"
)

// RegionCode distinguishes requests originating inside the local region from
// external ones. Every record is also implicitly part of the "all" view.
type RegionCode string

// Region codes.
const (
	RegionLocal    RegionCode = "LOCAL"
	RegionExternal RegionCode = "EXTERNAL"
)
