package ingest

import (
	"log/slog"

	"transferreport/internal/config"
	"transferreport/internal/model"
)

// Normalize applies the configured value cleanups to a record set: clinic
// renames, respiratory-treatment renames, and the status fold. It returns a
// new slice; the input is not mutated.
func Normalize(records []model.TransferRecord, cfg config.Config) []model.TransferRecord {
	out := make([]model.TransferRecord, len(records))
	copy(out, records)

	clinicRenames := 0
	respiratoryRenames := 0
	for i := range out {
		if repl, ok := cfg.ClinicOverrides[out[i].RequestedClinic]; ok {
			out[i].RequestedClinic = repl
			clinicRenames++
		}
		if repl, ok := cfg.RespiratoryOverrides[out[i].RespiratoryTreatment]; ok {
			out[i].RespiratoryTreatment = repl
			respiratoryRenames++
		}
		if out[i].Status == "" {
			out[i].Status = cfg.MapStatus(out[i].RawStatus)
		}
	}

	if clinicRenames > 0 || respiratoryRenames > 0 {
		slog.Info("applied value overrides",
			"clinic_renames", clinicRenames,
			"respiratory_renames", respiratoryRenames)
	}

	return out
}
