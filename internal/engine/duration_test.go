package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseWaitDuration(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   time.Duration
		wantOK bool
	}{
		{
			name:   "full form",
			input:  "2 days 3 hours 15 minutes",
			want:   2*24*time.Hour + 3*time.Hour + 15*time.Minute,
			wantOK: true,
		},
		{
			name:   "hours only",
			input:  "20 hours",
			want:   20 * time.Hour,
			wantOK: true,
		},
		{
			name:   "days and minutes without hours",
			input:  "1 day 30 minutes",
			want:   24*time.Hour + 30*time.Minute,
			wantOK: true,
		},
		{
			name:   "singular units",
			input:  "1 day 1 hour 1 minute",
			want:   25*time.Hour + time.Minute,
			wantOK: true,
		},
		{
			name:   "explicit zero components",
			input:  "0 days 20 hours 0 minutes",
			want:   20 * time.Hour,
			wantOK: true,
		},
		{
			name:   "empty string",
			input:  "",
			want:   0,
			wantOK: false,
		},
		{
			name:   "garbled text",
			input:  "garbled text",
			want:   0,
			wantOK: false,
		},
		{
			name:   "unit without a number",
			input:  "days and hours pass",
			want:   0,
			wantOK: false,
		},
		{
			name:   "number without a unit",
			input:  "42",
			want:   0,
			wantOK: false,
		},
		{
			name:   "noise around valid tokens",
			input:  "about 2 days or so",
			want:   48 * time.Hour,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseWaitDuration(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
