package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"transferreport/internal/model"
)

func TestMapStatus(t *testing.T) {
	cfg := Default()

	tests := []struct {
		name string
		raw  string
		want model.Status
	}{
		{"searching", "Searching for Placement", model.StatusSearching},
		{"arranged", "placement arranged", model.StatusArranged},
		{"cancelled long form", "Transfer Cancelled", model.StatusCancelled},
		{"cancelled short form", "CANCELLED", model.StatusCancelled},
		{"new request folds into searching", "New Request", model.StatusSearching},
		{"surrounding whitespace", "  placement arranged  ", model.StatusArranged},
		{"unmapped label", "pending review", model.StatusUnknown},
		{"empty", "", model.StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.MapStatus(tt.raw))
		})
	}
}

func TestMapStatusWithoutFolding(t *testing.T) {
	cfg := Default()
	cfg.FoldNewRequests = false

	assert.Equal(t, model.StatusUnknown, cfg.MapStatus("new request"))
	assert.Equal(t, model.StatusSearching, cfg.MapStatus("searching for placement"))
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load(viper.New())

	assert.Equal(t, "Local", cfg.LocalRegion)
	assert.True(t, cfg.FoldNewRequests)
	assert.Equal(t, model.StatusSearching, cfg.MapStatus("searching for placement"))
}

func TestLoadOverrides(t *testing.T) {
	v := viper.New()
	v.Set("engine.local_region", "Central District")
	v.Set("engine.fold_new_requests", false)
	v.Set("engine.status_vocabulary", map[string]string{
		"awaiting bed": "searching_for_placement",
	})
	v.Set("engine.clinic_overrides", map[string]string{
		"cardio": "Cardiology",
	})

	cfg := Load(v)

	assert.Equal(t, "Central District", cfg.LocalRegion)
	assert.False(t, cfg.FoldNewRequests)
	assert.Equal(t, model.StatusSearching, cfg.MapStatus("Awaiting Bed"))
	assert.Equal(t, "Cardiology", cfg.ClinicOverrides["cardio"])

	// Defaults survive layering.
	assert.Equal(t, model.StatusArranged, cfg.MapStatus("placement arranged"))
}
