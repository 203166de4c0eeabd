package bookingevents

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// HeaderEventType заголовок Kafka-сообщения с типом события
const HeaderEventType = "event-type"

// Message JSON-представление события в топике
type Message struct {
	Type       string    `json:"type"`
	BookingID  uuid.UUID `json:"bookingId"`
	ServiceID  uuid.UUID `json:"serviceId"`
	ConsumerID uuid.UUID `json:"consumerId"`
	FromStatus *string   `json:"fromStatus,omitempty"`
	ToStatus   string    `json:"toStatus"`
	ActorID    uuid.UUID `json:"actorId"`
	ActorRole  string    `json:"actorRole"`
	OccurredAt time.Time `json:"occurredAt"`
}

func fromDomainEvent(e *domain.BookingEvent, now time.Time) Message {
	msg := Message{
		Type:       string(e.Type),
		BookingID:  e.BookingID,
		ServiceID:  e.ServiceID,
		ConsumerID: e.ConsumerID,
		ToStatus:   string(e.ToStatus),
		ActorID:    e.ActorID,
		ActorRole:  string(e.ActorRole),
		OccurredAt: e.CreatedAt,
	}
	if e.FromStatus != nil {
		from := string(*e.FromStatus)
		msg.FromStatus = &from
	}
	if msg.OccurredAt.IsZero() {
		msg.OccurredAt = now
	}
	return msg
}
