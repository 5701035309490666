package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime12h(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"14:30", "2:30 PM"},
		{"00:00", "12:00 AM"},
		{"12:00", "12:00 PM"},
		{"09:05", "9:05 AM"},
		{"23:59", "11:59 PM"},
		{"18", "6:00 PM"},
		{"07:30:00", "7:30 AM"},
		{"", "-"},
		{"25:00", "-"},
		{"abc", "-"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatTime12h(tc.in), "input %q", tc.in)
	}
}

func TestFormatRange(t *testing.T) {
	assert.Equal(t, "6:00 PM to 7:00 PM", FormatRange("18:00", "19:00"))
	assert.Equal(t, "-", FormatRange("", "19:00"))
	assert.Equal(t, "-", FormatRange("18:00", ""))
}

func TestIsPast(t *testing.T) {
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsPast("2025-07-01", "09:00", now))
	assert.False(t, IsPast("2025-07-01", "18:00", now))
	// Only the current day can have past slots.
	assert.False(t, IsPast("2025-06-30", "09:00", now))
	assert.False(t, IsPast("2025-07-02", "09:00", now))
	// Unparseable input never blocks a toggle.
	assert.False(t, IsPast("bad-date", "09:00", now))
}

func TestMonthAbbrev(t *testing.T) {
	assert.Equal(t, "JAN", MonthAbbrev(time.January))
	assert.Equal(t, "DEC", MonthAbbrev(time.December))

	assert.True(t, ValidMonthAbbrev("SEP"))
	assert.False(t, ValidMonthAbbrev("September"))
	assert.False(t, ValidMonthAbbrev("sep"))
	assert.False(t, ValidMonthAbbrev(""))
}
