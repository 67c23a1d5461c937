package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ClockLayout renders a first-pitch time such as "7:05 PM".
const ClockLayout = "3:04 PM"

// DateClockLayout parses a date joined to a ClockLayout time.
const DateClockLayout = DateLayout + " " + ClockLayout

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatClock formats t as ClockLayout in loc, or in t's own location when loc is nil.
func FormatClock(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(ClockLayout)
}

// CurrentSeason returns the baseball season in progress at now. Before March
// the previous year's season is still the latest complete one.
func CurrentSeason(now time.Time) int {
	if now.Month() < time.March {
		return now.Year() - 1
	}
	return now.Year()
}

// Today returns now's calendar date in loc (or now's location when loc is nil).
func Today(now time.Time, loc *time.Location) time.Time {
	if loc != nil {
		now = now.In(loc)
	}
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}
