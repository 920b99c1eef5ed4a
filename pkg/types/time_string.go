package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

// TimeString represents a wall-clock time of day in "HH:MM" form.
// Values built through the constructors are always normalized (zero padded),
// so they order correctly both as strings and as minutes since midnight.
type TimeString string

const (
	timeLayout        = "15:04"
	timeLayoutSeconds = "15:04:05"
	minutesPerDay     = 24 * 60
)

var (
	// ErrInvalidTimeString is returned when a value is not a valid HH:MM time
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow is returned when arithmetic leaves the bounds of a single day
	ErrTimeOverflow = errors.New("time string out of day range")
)

// NewTimeString builds a TimeString from the clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and normalizes an "HH:MM" value.
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(t), nil
}

// NewTimeStringFromMinutes builds a TimeString from minutes since midnight.
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOverflow, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// String implements fmt.Stringer
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a normalized HH:MM time.
func (t TimeString) Validate() error {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if NewTimeString(parsed) != t {
		return fmt.Errorf("%w: %q is not zero padded", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Minutes returns minutes since midnight, or -1 for an invalid value.
func (t TimeString) Minutes() int {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return -1
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// IsOnTheHour reports whether the minute component is zero.
func (t TimeString) IsOnTheHour() bool {
	m := t.Minutes()
	return m >= 0 && m%60 == 0
}

// AddMinutes returns t shifted by the given number of minutes.
// The result must stay within the same day.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	base := t.Minutes()
	if base < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return NewTimeStringFromMinutes(base + minutes)
}

// IsBefore reports whether t is strictly earlier than other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter reports whether t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// Scan implements sql.Scanner. PostgreSQL returns TIME columns as "HH:MM:SS".
func (t *TimeString) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case []byte:
		raw = string(v)
	case string:
		raw = v
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}

	for _, layout := range []string{timeLayoutSeconds, timeLayout} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			*t = NewTimeString(parsed)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidTimeString, raw)
}

// Value implements driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}
