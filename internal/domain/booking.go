package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus parses a status name, case-insensitive ("CONFIRMED" and "confirmed" are equal)
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch status := BookingStatus(strings.ToLower(strings.TrimSpace(s))); status {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}

// IsActive reports whether the status holds its slot
func (s BookingStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsTerminal reports whether no transition can leave the status
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Booking represents a consumer's reservation of a service slot.
// Bookings are never deleted; cancellation is a terminal status.
type Booking struct {
	ID          uuid.UUID
	ServiceID   uuid.UUID
	ConsumerID  uuid.UUID
	BookingDate time.Time // calendar date, UTC midnight
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      BookingStatus
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking holds its slot (pending or confirmed)
func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// IsTerminal returns true if the booking is completed or cancelled
func (b *Booking) IsTerminal() bool {
	return b.Status.IsTerminal()
}

// BookingsFilter filter for booking listings
type BookingsFilter struct {
	ConsumerID *uuid.UUID     // bookings created by the consumer
	ProviderID *uuid.UUID     // bookings for services owned by the provider
	ServiceID  *uuid.UUID     // bookings of a single service
	Date       *time.Time     // bookings on a single date
	Status     *BookingStatus // exact status
	ActiveOnly bool           // only pending and confirmed
}

// Overlaps reports whether half-open intervals [s1,e1) and [s2,e2) intersect.
// Touching endpoints do not overlap.
func Overlaps(s1, e1, s2, e2 types.TimeString) bool {
	return s1.IsBefore(e2) && s2.IsBefore(e1)
}

// FindConflict returns the first active booking whose interval overlaps [start,end), or nil.
// existing is expected to hold bookings of one service on one date.
func FindConflict(existing []*Booking, start, end types.TimeString) *Booking {
	for _, b := range existing {
		if !b.IsActive() {
			continue
		}
		if Overlaps(b.StartTime, b.EndTime, start, end) {
			return b
		}
	}
	return nil
}

// DateOnly drops the clock part and returns the calendar date at UTC midnight
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsDateBefore reports whether the calendar date of a is strictly before the calendar date of b
func IsDateBefore(a, b time.Time) bool {
	return DateOnly(a).Before(DateOnly(b))
}
