// Package timeutil is the single home for time-of-day arithmetic:
// parsing the inconsistent clock shapes upstream producers emit,
// shift durations with overnight wraparound, and tardiness. Every
// call site routes through here; do not duplicate these computations
// at call sites.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

var (
	clock24Pattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
	clock12Pattern = regexp.MustCompile(`^(0?[1-9]|1[0-2]):([0-5]\d)\s*([AaPp])\.?[Mm]\.?$`)
)

// ParseToMinutes normalizes a time-of-day value into minutes since
// midnight. Accepted shapes: "HH:MM" (24h), "hh:mm AM/PM", time.Time
// and *time.Time. Placeholders ("", "-"), nil and anything malformed
// yield nil; parsing never fails loudly because the inputs arrive
// from multiple inconsistent producers.
func ParseToMinutes(value any) *int {
	switch v := value.(type) {
	case string:
		return parseClock(v)
	case *string:
		if v == nil {
			return nil
		}
		return parseClock(*v)
	case time.Time:
		if v.IsZero() {
			return nil
		}
		m := v.Hour()*60 + v.Minute()
		return &m
	case *time.Time:
		if v == nil {
			return nil
		}
		return ParseToMinutes(*v)
	default:
		return nil
	}
}

func parseClock(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return nil
	}

	if m := clock24Pattern.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		total := h*60 + mm
		return &total
	}

	if m := clock12Pattern.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		if h == 12 {
			h = 0
		}
		if strings.EqualFold(m[3], "p") {
			h += 12
		}
		total := h*60 + mm
		return &total
	}

	// Some producers hand over full timestamps as strings.
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			total := t.Hour()*60 + t.Minute()
			return &total
		}
	}

	return nil
}

// DurationMinutes returns the span between two clock values, adding a
// day when the shift crosses midnight (out earlier than in).
func DurationMinutes(inMinutes, outMinutes int) int {
	if outMinutes < inMinutes {
		outMinutes += minutesPerDay
	}
	return outMinutes - inMinutes
}

// ExpectedWorkMinutes is the scheduled working time net of break,
// floored at zero. Rest days expect no work.
func ExpectedWorkMinutes(inMinutes, outMinutes, breakMinutes int, isRestDay bool) int {
	if isRestDay {
		return 0
	}
	expected := DurationMinutes(inMinutes, outMinutes) - breakMinutes
	if expected < 0 {
		return 0
	}
	return expected
}

// Tardiness returns the positive minutes between actual check-in and
// scheduled start. Early arrivals count as zero.
func Tardiness(actualInMinutes, scheduledInMinutes int) int {
	late := actualInMinutes - scheduledInMinutes
	if late < 0 {
		return 0
	}
	return late
}

// FormatMinutes renders a minute total as "{h}h {m}m".
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// FormatHHMM renders minutes since midnight as a 24h "HH:MM" clock,
// wrapping values past midnight.
func FormatHHMM(minutes int) string {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
