package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transferreport/internal/config"
	"transferreport/internal/model"
)

func TestNormalizeClinicOverrides(t *testing.T) {
	cfg := config.Default()
	cfg.ClinicOverrides = map[string]string{
		"cardio":       "Cardiology",
		"Chest Clinic": "Pulmonology",
	}

	records := []model.TransferRecord{
		{RequestedClinic: "cardio", Status: model.StatusSearching},
		{RequestedClinic: "Chest Clinic", Status: model.StatusSearching},
		{RequestedClinic: "Neurology", Status: model.StatusSearching},
	}

	out := Normalize(records, cfg)
	require.Len(t, out, 3)
	assert.Equal(t, "Cardiology", out[0].RequestedClinic)
	assert.Equal(t, "Pulmonology", out[1].RequestedClinic)
	assert.Equal(t, "Neurology", out[2].RequestedClinic)
}

func TestNormalizeRespiratoryOverrides(t *testing.T) {
	cfg := config.Default()
	cfg.RespiratoryOverrides = map[string]string{"vent": "Ventilated"}

	out := Normalize([]model.TransferRecord{
		{RespiratoryTreatment: "vent", Status: model.StatusSearching},
	}, cfg)

	require.Len(t, out, 1)
	assert.Equal(t, "Ventilated", out[0].RespiratoryTreatment)
}

func TestNormalizeMapsUnsetStatus(t *testing.T) {
	out := Normalize([]model.TransferRecord{
		{RawStatus: "placement arranged"},
	}, config.Default())

	require.Len(t, out, 1)
	assert.Equal(t, model.StatusArranged, out[0].Status)
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	cfg := config.Default()
	cfg.ClinicOverrides = map[string]string{"cardio": "Cardiology"}

	records := []model.TransferRecord{
		{RequestedClinic: "cardio", Status: model.StatusSearching},
	}

	_ = Normalize(records, cfg)
	assert.Equal(t, "cardio", records[0].RequestedClinic)
}
