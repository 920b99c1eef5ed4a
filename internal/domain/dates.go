package domain

import "time"

// DateOnly drops the clock part of t, keeping its location
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsDateInPast returns true if date is before the calendar day of now.
// Dates are compared by year, month and day only.
func IsDateInPast(date, now time.Time) bool {
	return civil(date).Before(civil(now))
}

// IsBeyondAdvanceLimit returns true if date is later than now + advanceDays.
// The boundary day itself is allowed.
func IsBeyondAdvanceLimit(date, now time.Time, advanceDays int) bool {
	limit := civil(now).AddDate(0, 0, advanceDays)
	return civil(date).After(limit)
}

// civil maps a calendar day to UTC midnight so that dates parsed in UTC and
// clocks in local time compare by their calendar fields.
func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
