package transition_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса на смену статуса
type Request struct {
	BookingID uuid.UUID
	Actor     domain.Actor
	Status    string // целевой статус, регистр не важен
}

// Response бронирование после смены статуса
type Response struct {
	ID          uuid.UUID
	ServiceID   uuid.UUID
	ConsumerID  uuid.UUID
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      string
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
