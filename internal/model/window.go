package model

import (
	"fmt"
	"time"
)

// AnalysisWindow is the 08:00-to-08:00 interval defining one analysis day's
// reporting scope. Derived once per invocation, never persisted.
type AnalysisWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside [Start, End).
func (w AnalysisWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

func (w AnalysisWindow) String() string {
	return fmt.Sprintf("%s - %s",
		w.Start.Format("2006-01-02 15:04"),
		w.End.Format("2006-01-02 15:04"))
}
