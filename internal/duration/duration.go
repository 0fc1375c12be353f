package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Date and timestamp layouts shared across the repo. Timestamps are stored
// as local-time strings at second precision.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// Hour and minute tokens: an integer or decimal number followed by "h"/"m",
// optionally separated by whitespace. Matched independently anywhere in the
// input, so "2h 30m", "2h30m", and "2h extra" all parse.
var (
	hourPattern   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*h`)
	minutePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*m`)
)

// Parse converts free-form duration text to whole seconds.
// Accepts "2h 30m", "2h30m", "90m", "1.5h", or a bare number interpreted as
// hours. Returns false if nothing parseable was found. Callers must also
// treat non-positive results as invalid.
func Parse(text string) (int, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return 0, false
	}

	total := 0
	matched := false

	if m := hourPattern.FindStringSubmatch(s); m != nil {
		if hours, err := strconv.ParseFloat(m[1], 64); err == nil {
			total += int(hours * 3600)
			matched = true
		}
	}
	if m := minutePattern.FindStringSubmatch(s); m != nil {
		if minutes, err := strconv.ParseFloat(m[1], 64); err == nil {
			total += int(minutes * 60)
			matched = true
		}
	}
	if matched {
		return total, true
	}

	// No unit token anywhere: try the whole string as a bare hour count.
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(value * 3600), true
}

// Format renders seconds as a compact human string such as "2h 30m", "45m 10s",
// or "30s". At most two units are shown, most significant first; seconds are
// dropped once hours are present. Negative input renders as "0s".
func Format(seconds int) string {
	if seconds < 0 {
		return "0s"
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	switch {
	case hours > 0:
		if minutes > 0 {
			return fmt.Sprintf("%dh %dm", hours, minutes)
		}
		return fmt.Sprintf("%dh", hours)
	case minutes > 0:
		if secs > 0 {
			return fmt.Sprintf("%dm %ds", minutes, secs)
		}
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}

// FormatClock renders seconds as zero-padded HH:MM:SS. Hours do not roll
// over, so 100 hours renders as "100:00:00". Negative input renders as
// "00:00:00".
func FormatClock(seconds int) string {
	if seconds < 0 {
		return "00:00:00"
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}
