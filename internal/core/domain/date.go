package domain

import "time"

// DateLayout is the calendar date format used on the wire and in storage.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date and returns it at midnight UTC.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// TruncateDate drops the time-of-day component, keeping the calendar date as read in t's location.
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
