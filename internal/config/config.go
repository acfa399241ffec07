// Package config holds the explicit configuration value handed to ingestion
// and the analysis engine. It is constructed once at startup; nothing in the
// engine reads shared global state.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"transferreport/internal/model"
)

// Config captures every tunable the original reporting pipeline exposed:
// which source region counts as local, how source status labels map onto the
// closed status set, and the value-cleanup tables applied before analysis.
type Config struct {
	// LocalRegion is the request_source_region value that marks an
	// intra-regional request. Anything else non-empty is external.
	LocalRegion string

	// StatusVocabulary maps lowercased source status labels onto the closed
	// status set. Unmapped labels become StatusUnknown.
	StatusVocabulary map[string]model.Status

	// ClinicOverrides renames clinic labels before per-clinic statistics.
	ClinicOverrides map[string]string

	// RespiratoryOverrides renames respiratory-treatment labels.
	RespiratoryOverrides map[string]string

	// FoldNewRequests treats the transient "new request" status as
	// searching-for-placement, matching the reporting convention.
	FoldNewRequests bool
}

// Default returns the configuration used when no overrides are provided.
func Default() Config {
	return Config{
		LocalRegion: "Local",
		StatusVocabulary: map[string]model.Status{
			"searching for placement": model.StatusSearching,
			"placement arranged":      model.StatusArranged,
			"transfer cancelled":      model.StatusCancelled,
			"cancelled":               model.StatusCancelled,
			"new request":             model.StatusSearching,
		},
		ClinicOverrides:      map[string]string{},
		RespiratoryOverrides: map[string]string{},
		FoldNewRequests:      true,
	}
}

// Load builds a Config from viper settings layered over the defaults.
func Load(v *viper.Viper) Config {
	cfg := Default()

	if v.IsSet("engine.local_region") {
		cfg.LocalRegion = v.GetString("engine.local_region")
	}
	if v.IsSet("engine.fold_new_requests") {
		cfg.FoldNewRequests = v.GetBool("engine.fold_new_requests")
	}
	for raw, status := range v.GetStringMapString("engine.status_vocabulary") {
		cfg.StatusVocabulary[strings.ToLower(raw)] = model.Status(strings.ToUpper(status))
	}
	for old, repl := range v.GetStringMapString("engine.clinic_overrides") {
		cfg.ClinicOverrides[old] = repl
	}
	for old, repl := range v.GetStringMapString("engine.respiratory_overrides") {
		cfg.RespiratoryOverrides[old] = repl
	}

	return cfg
}

// MapStatus resolves a raw status label against the vocabulary.
func (c Config) MapStatus(raw string) model.Status {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return model.StatusUnknown
	}
	if !c.FoldNewRequests && key == "new request" {
		return model.StatusUnknown
	}
	if status, ok := c.StatusVocabulary[key]; ok {
		return status
	}
	return model.StatusUnknown
}
