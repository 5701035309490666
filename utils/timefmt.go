package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var monthAbbrevs = []string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

// FormatTime12h converts a 24-hour "HH:MM" (or "HH:MM:SS", or bare "HH")
// string into a 12-hour display form like "2:30 PM". Hours are not
// zero-padded, minutes always are. Purely textual, no timezone handling.
func FormatTime12h(time24 string) string {
	if time24 == "" {
		return "-"
	}
	parts := strings.Split(time24, ":")
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "-"
	}
	minutes := "00"
	if len(parts) > 1 && parts[1] != "" {
		minutes = parts[1]
	}
	if len(minutes) == 1 {
		minutes = "0" + minutes
	}
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%s %s", hour, minutes, period)
}

// FormatRange renders a "start to end" display label, or "-" when either
// side is missing.
func FormatRange(start, end string) string {
	if start == "" || end == "" {
		return "-"
	}
	return FormatTime12h(start) + " to " + FormatTime12h(end)
}

// IsPast reports whether a slot starting at startTime ("HH:MM", 24-hour) on
// the given ISO date has already elapsed relative to now. Only the current
// day can have past slots; future dates (and month-mode slots, which carry
// no date) always return false.
func IsPast(date, startTime string, now time.Time) bool {
	day, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return false
	}
	if day.Year() != now.Year() || day.YearDay() != now.YearDay() {
		return false
	}
	parts := strings.Split(startTime, ":")
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	minute := 0
	if len(parts) > 1 {
		minute, _ = strconv.Atoi(parts[1])
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, now.Location())
	return start.Before(now)
}

// MonthAbbrev returns the 3-letter uppercase abbreviation (JAN..DEC) used as
// the month key in all month-mode requests and storage.
func MonthAbbrev(m time.Month) string {
	return monthAbbrevs[int(m)-1]
}

// ValidMonthAbbrev reports whether s is one of JAN..DEC.
func ValidMonthAbbrev(s string) bool {
	for _, abbrev := range monthAbbrevs {
		if s == abbrev {
			return true
		}
	}
	return false
}
