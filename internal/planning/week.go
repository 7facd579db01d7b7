// Package planning holds the weekly planning core: calendar-week windows,
// visit aggregation, plan-vs-actual reconciliation, the plan approval
// policy, and the weekly grid view model. Everything here is pure; data
// fetching stays in the handlers.
package planning

import (
	"fmt"
	"strings"
	"time"
)

// DayKeyLayout is the canonical date-only format used as a mapping key
// throughout the planning core.
const DayKeyLayout = "2006-01-02"

// DateParseError reports a malformed calendar-date string. Callers surface
// it; the core never falls back to "today" on bad input.
type DateParseError struct {
	Value string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("invalid calendar date %q: %v", e.Value, e.Err)
}

func (e *DateParseError) Unwrap() error { return e.Err }

// DayKey returns the canonical date-only key for t. Two instants on the
// same calendar day produce the same key regardless of time of day.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// ParseDayKey parses a YYYY-MM-DD string into a midnight time value
func ParseDayKey(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	parsed, err := time.Parse(DayKeyLayout, value)
	if err != nil {
		return time.Time{}, &DateParseError{Value: value, Err: err}
	}
	return parsed, nil
}

// DateOnly truncates t to midnight in its own location
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekWindow returns the 7 consecutive dates of the Saturday-to-Friday
// week containing ref. The Saturday start encodes the regional work-week
// convention and is fixed.
func WeekWindow(ref time.Time) [7]time.Time {
	day := DateOnly(ref)

	// Sunday=0 .. Saturday=6; offset back to the preceding Saturday
	weekday := int(day.Weekday())
	offset := weekday + 1
	if weekday == 6 {
		offset = 0
	}

	start := day.AddDate(0, 0, -offset)
	var window [7]time.Time
	for i := range window {
		window[i] = start.AddDate(0, 0, i)
	}
	return window
}
