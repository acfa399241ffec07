// Package engine implements the temporal case-classification and aggregation
// engine for transfer-request reports.
package engine

import (
	"strconv"
	"strings"
	"time"
)

// ParseWaitDuration parses a human-authored elapsed-time string such as
// "2 days 3 hours 15 minutes" into a duration. Any of the three components
// may be absent; absent components count as zero. The scan is token-by-token
// and order-independent; no grammar is enforced beyond token presence.
//
// Malformed or empty input never produces an error: the result is a zero
// duration with ok=false. Callers must treat that as "unknown", not as a
// verified zero.
func ParseWaitDuration(text string) (time.Duration, bool) {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return 0, false
	}

	var days, hours, minutes int
	parsed := false

	for i, field := range fields {
		unit := strings.TrimRight(field, ".,;")
		if i == 0 {
			continue
		}
		value, err := strconv.Atoi(strings.TrimSpace(fields[i-1]))
		if err != nil {
			continue
		}
		switch {
		case strings.HasPrefix(unit, "day"):
			days = value
			parsed = true
		case strings.HasPrefix(unit, "hour"):
			hours = value
			parsed = true
		case strings.HasPrefix(unit, "minute"):
			minutes = value
			parsed = true
		}
	}

	if !parsed {
		return 0, false
	}

	d := time.Duration(days)*24*time.Hour +
		time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute
	return d, true
}
