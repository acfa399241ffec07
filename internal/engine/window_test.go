package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowFor(t *testing.T) {
	day := time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC)
	window := WindowFor(day)

	assert.Equal(t, time.Date(2025, 10, 4, 8, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2025, 10, 5, 8, 0, 0, 0, time.UTC), window.End)
	assert.Equal(t, 24*time.Hour, window.End.Sub(window.Start))
}

func TestWindowForIgnoresTimeOfDay(t *testing.T) {
	// The analysis day is a calendar date; the clock time it arrives with
	// must not shift the window.
	midnight := WindowFor(time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC))
	evening := WindowFor(time.Date(2025, 10, 5, 22, 41, 9, 0, time.UTC))

	assert.Equal(t, midnight, evening)
}

func TestWindowForMonthBoundary(t *testing.T) {
	window := WindowFor(time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, 10, 31, 8, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2025, 11, 1, 8, 0, 0, 0, time.UTC), window.End)
}

func TestWindowContains(t *testing.T) {
	window := WindowFor(time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"start is inside", window.Start, true},
		{"end is outside", window.End, false},
		{"middle of window", time.Date(2025, 10, 4, 20, 0, 0, 0, time.UTC), true},
		{"just before start", window.Start.Add(-time.Second), false},
		{"just before end", window.End.Add(-time.Second), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, window.Contains(tt.t))
		})
	}
}
