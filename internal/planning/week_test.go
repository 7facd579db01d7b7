package planning_test

import (
	"errors"
	"testing"
	"time"

	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/planning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekWindow_StartsOnSaturday(t *testing.T) {
	// One reference date per weekday
	refs := []time.Time{
		date(2024, time.May, 4),  // Saturday
		date(2024, time.May, 5),  // Sunday
		date(2024, time.May, 6),  // Monday
		date(2024, time.May, 7),  // Tuesday
		date(2024, time.May, 8),  // Wednesday
		date(2024, time.May, 9),  // Thursday
		date(2024, time.May, 10), // Friday
	}

	for _, ref := range refs {
		window := planning.WeekWindow(ref)

		assert.Equal(t, time.Saturday, window[0].Weekday(), "ref %s", ref.Format("2006-01-02"))
		for i := 1; i < 7; i++ {
			assert.Equal(t, window[i-1].AddDate(0, 0, 1), window[i], "window dates must be consecutive")
		}
	}
}

func TestWeekWindow_SaturdayIsItsOwnStart(t *testing.T) {
	saturday := date(2024, time.May, 4)
	window := planning.WeekWindow(saturday)
	assert.Equal(t, saturday, window[0])
	assert.Equal(t, date(2024, time.May, 10), window[6]) // Friday
}

func TestWeekWindow_ContainsReference(t *testing.T) {
	ref := date(2024, time.May, 8)
	window := planning.WeekWindow(ref)

	found := false
	for _, day := range window {
		if day.Equal(ref) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestWeekWindow_NavigationReversible(t *testing.T) {
	ref := date(2024, time.May, 8)
	window := planning.WeekWindow(ref)

	next := planning.WeekWindow(window[0].AddDate(0, 0, 7))
	assert.Equal(t, window[0].AddDate(0, 0, 7), next[0])

	back := planning.WeekWindow(next[0].AddDate(0, 0, -7))
	assert.Equal(t, window, back)
}

func TestDayKey_StableUnderTimeOfDay(t *testing.T) {
	early := time.Date(2024, time.May, 8, 0, 1, 0, 0, time.UTC)
	late := time.Date(2024, time.May, 8, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, "2024-05-08", planning.DayKey(early))
	assert.Equal(t, planning.DayKey(early), planning.DayKey(late))
}

func TestParseDayKey(t *testing.T) {
	parsed, err := planning.ParseDayKey("2024-05-08")
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.May, 8), parsed)

	// Surrounding whitespace is tolerated
	parsed, err = planning.ParseDayKey(" 2024-05-08 ")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-08", planning.DayKey(parsed))
}

func TestParseDayKey_Malformed(t *testing.T) {
	for _, input := range []string{"", "not-a-date", "08/05/2024", "2024-13-40"} {
		_, err := planning.ParseDayKey(input)
		require.Error(t, err, "input %q", input)

		var parseErr *planning.DateParseError
		assert.True(t, errors.As(err, &parseErr), "expected DateParseError for %q", input)
	}
}
