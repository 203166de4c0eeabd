package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingEventType kind of a recorded booking change
type BookingEventType string

const (
	EventBookingCreated       BookingEventType = "booking.created"
	EventBookingStatusChanged BookingEventType = "booking.status_changed"
)

// BookingEvent audit record of a booking change.
// The same value is published to the event bus after commit.
type BookingEvent struct {
	ID         int64
	Type       BookingEventType
	BookingID  uuid.UUID
	ServiceID  uuid.UUID
	ConsumerID uuid.UUID
	FromStatus *BookingStatus // nil for booking.created
	ToStatus   BookingStatus
	ActorID    uuid.UUID
	ActorRole  ActorRole
	CreatedAt  time.Time
}

// NewCreatedEvent event for a freshly created booking
func NewCreatedEvent(b *Booking, actor Actor) *BookingEvent {
	return &BookingEvent{
		Type:       EventBookingCreated,
		BookingID:  b.ID,
		ServiceID:  b.ServiceID,
		ConsumerID: b.ConsumerID,
		ToStatus:   b.Status,
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
	}
}

// NewStatusChangedEvent event for a status transition from -> b.Status
func NewStatusChangedEvent(b *Booking, from BookingStatus, actor Actor) *BookingEvent {
	return &BookingEvent{
		Type:       EventBookingStatusChanged,
		BookingID:  b.ID,
		ServiceID:  b.ServiceID,
		ConsumerID: b.ConsumerID,
		FromStatus: &from,
		ToStatus:   b.Status,
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
	}
}
