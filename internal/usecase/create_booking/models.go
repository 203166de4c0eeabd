package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ConsumerID uuid.UUID        // ID потребителя (из identity provider)
	ServiceID  uuid.UUID        // ID услуги
	Date       time.Time        // Дата бронирования (используются только Y/M/D)
	StartTime  types.TimeString // Время начала, например "09:00"
	EndTime    types.TimeString // Время окончания (не включается в интервал)
	Notes      *string          // Заметки (опционально)
}

// Response модель ответа с созданным бронированием
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
