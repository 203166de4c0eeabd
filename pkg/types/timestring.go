package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// TimeString is a wall-clock time of day on a 24-hour scale with minute granularity.
// Values are always stored zero-padded ("09:05"), so lexical order equals chronological order.
type TimeString string

const (
	timeLayout     = "15:04"
	minutesPerDay  = 24 * 60
	minutesPerHour = 60
)

// ErrInvalidTimeString is returned for values that are not a valid HH:MM time of day
var ErrInvalidTimeString = errors.New("invalid time string format")

var timeStringRegex = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):([0-5][0-9])$`)

// NewTimeString returns the time of day of t, truncated to minutes
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses "H:MM" or "HH:MM" and normalizes it to "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	hours, minutes, err := parse(s)
	if err != nil {
		return "", err
	}
	return fromParts(hours, minutes), nil
}

// NewTimeStringFromMinutes builds a TimeString from minutes since midnight
func NewTimeStringFromMinutes(total int) (TimeString, error) {
	if total < 0 || total >= minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes is out of day range", ErrInvalidTimeString, total)
	}
	return fromParts(total/minutesPerHour, total%minutesPerHour), nil
}

// Validate checks the value is a valid HH:MM time of day
func (t TimeString) Validate() error {
	_, _, err := parse(string(t))
	return err
}

// IsZero reports whether the value is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes returns minutes since midnight, or -1 for an invalid value
func (t TimeString) Minutes() int {
	hours, minutes, err := parse(string(t))
	if err != nil {
		return -1
	}
	return hours*minutesPerHour + minutes
}

// IsBefore reports whether t is strictly earlier than other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter reports whether t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// AddMinutes shifts the time by n minutes; the result must stay within the same day
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(t.Minutes() + n)
}

func (t TimeString) String() string {
	return string(t)
}

// Scan implements sql.Scanner. PostgreSQL TIME columns arrive as "HH:MM:SS".
func (t *TimeString) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case nil:
		*t = ""
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}

	if len(raw) > len(timeLayout) {
		raw = raw[:len(timeLayout)]
	}

	parsed, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

func parse(s string) (int, int, error) {
	m := timeStringRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours, minutes, nil
}

func fromParts(hours, minutes int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", hours, minutes))
}
