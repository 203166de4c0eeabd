package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetActiveByServiceAndDate(ctx context.Context, serviceID uuid.UUID, date time.Time) ([]*domain.Booking, error)
}

// AvailabilityRepository интерфейс репозитория услуг и окон доступности
type AvailabilityRepository interface {
	GetService(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	ListWindows(ctx context.Context, serviceID uuid.UUID, day *domain.DayOfWeek) ([]*domain.AvailabilityWindow, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
