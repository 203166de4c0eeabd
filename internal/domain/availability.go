package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// DayOfWeek day of a weekly recurring availability window
type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

// weekOrder MON..SUN
var weekOrder = map[DayOfWeek]int{
	Monday:    1,
	Tuesday:   2,
	Wednesday: 3,
	Thursday:  4,
	Friday:    5,
	Saturday:  6,
	Sunday:    7,
}

var weekdays = map[time.Weekday]DayOfWeek{
	time.Sunday:    Sunday,
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
}

// ParseDayOfWeek accepts full ("MONDAY") and short ("MON") names, case-insensitive
func ParseDayOfWeek(s string) (DayOfWeek, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for day := range weekOrder {
		if string(day) == name || (len(name) == 3 && strings.HasPrefix(string(day), name)) {
			return day, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDayOfWeek, s)
}

// Order position in the week, Monday = 1
func (d DayOfWeek) Order() int {
	return weekOrder[d]
}

// DayOfWeekOf maps a naive calendar date to its day of week.
// Only the Y/M/D of date is used, evaluated in UTC, so the result does not depend on the
// location attached to the value.
func DayOfWeekOf(date time.Time) DayOfWeek {
	return weekdays[DateOnly(date).Weekday()]
}

// AvailabilityWindow is a weekly recurring interval during which a service may be booked
type AvailabilityWindow struct {
	ID        uuid.UUID
	ServiceID uuid.UUID
	DayOfWeek DayOfWeek
	StartTime types.TimeString
	EndTime   types.TimeString
	CreatedAt time.Time
}

// Validate checks the window before it is written
func (w *AvailabilityWindow) Validate() error {
	if _, ok := weekOrder[w.DayOfWeek]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDayOfWeek, w.DayOfWeek)
	}
	if err := w.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}
	if err := w.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: end time: %v", ErrInvalidInput, err)
	}
	if !w.StartTime.IsBefore(w.EndTime) {
		return ErrInvalidTimeRange
	}
	return nil
}

// Contains reports whether [start,end) lies fully inside the window (day is not checked)
func (w *AvailabilityWindow) Contains(start, end types.TimeString) bool {
	return !start.IsBefore(w.StartTime) && !end.IsAfter(w.EndTime)
}

// IsSlotAvailable reports whether [start,end) on the given day is fully contained in a single
// window. A request spanning two adjacent windows is rejected even if their union covers it.
func IsSlotAvailable(windows []*AvailabilityWindow, day DayOfWeek, start, end types.TimeString) bool {
	for _, w := range windows {
		if w.DayOfWeek == day && w.Contains(start, end) {
			return true
		}
	}
	return false
}
