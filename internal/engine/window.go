package engine

import (
	"time"

	"transferreport/internal/model"
)

// Reporting cutover hour. One analysis day runs from 08:00 the previous
// calendar day to 08:00 on the analysis day, matching the shift handover.
const cutoverHour = 8

// WindowFor returns the analysis window for the given calendar day: the
// interval from 08:00 the day before to 08:00 on the day itself, in the
// day's location.
func WindowFor(day time.Time) model.AnalysisWindow {
	end := time.Date(day.Year(), day.Month(), day.Day(), cutoverHour, 0, 0, 0, day.Location())
	return model.AnalysisWindow{
		Start: end.AddDate(0, 0, -1),
		End:   end,
	}
}
