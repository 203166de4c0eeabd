package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса свободных интервалов
type Request struct {
	ServiceID uuid.UUID
	Date      time.Time // используются только Y/M/D
}

// Response свободные интервалы услуги на дату
type Response struct {
	Date      time.Time
	ServiceID uuid.UUID
	DayOfWeek domain.DayOfWeek
	Slots     []Slot
}

// Slot свободный интервал [StartTime, EndTime) внутри одного окна доступности.
// Любое бронирование, целиком лежащее в интервале, будет принято.
type Slot struct {
	WindowID  uuid.UUID
	StartTime types.TimeString
	EndTime   types.TimeString
}
