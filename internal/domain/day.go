package domain

import "time"

// Day is a calendar day in the local calendar
type Day struct {
	Date time.Time
}

// DayOf returns the local calendar day containing t
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Date: StartOfDay(y, m, d, t.Location())}
}

// StartOfDay returns the first instant of the given local calendar day.
// Out-of-range days are normalized as time.Date does. Where a DST shift
// skips midnight the day starts at the shift itself (e.g. 01:00).
func StartOfDay(year int, month time.Month, day int, loc *time.Location) time.Time {
	noon := time.Date(year, month, day, 12, 0, 0, 0, loc)
	y, m, d := noon.Date()

	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	if start.Day() == d {
		return start
	}

	// midnight does not exist; time.Date resolved it into the previous day
	if _, end := start.ZoneBounds(); !end.IsZero() && end.Day() == d {
		return end
	}
	for start.Day() != d && start.Before(noon) {
		start = start.Add(time.Hour)
	}
	return start
}

// Ordinal returns the 1-based day of the year (January 1 = 1)
func (d Day) Ordinal() int {
	return d.Date.YearDay()
}

// DateString returns date in YYYYMMDD format
func (d Day) DateString() string {
	return d.Date.Format("20060102")
}

// DisplayString returns a user-friendly date string relative to now
func (d Day) DisplayString(now time.Time) string {
	date := d.Date
	now = now.In(date.Location())

	if sameDay(date, now) {
		return "Today"
	}

	if sameDay(date, now.AddDate(0, 0, -1)) {
		return "Yesterday"
	}

	if sameDay(date, now.AddDate(0, 0, 1)) {
		return "Tomorrow"
	}

	return date.Format("Jan 2, 2006")
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
