package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	LockSlot(ctx context.Context, serviceID uuid.UUID, date time.Time) error
	GetActiveByServiceAndDate(ctx context.Context, serviceID uuid.UUID, date time.Time) ([]*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) error
	InsertEvent(ctx context.Context, event *domain.BookingEvent) error
}

// AvailabilityRepository интерфейс репозитория услуг и окон доступности
type AvailabilityRepository interface {
	GetService(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	ListWindows(ctx context.Context, serviceID uuid.UUID, day *domain.DayOfWeek) ([]*domain.AvailabilityWindow, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher публикует события бронирований после коммита
type EventPublisher interface {
	Publish(ctx context.Context, event *domain.BookingEvent) error
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
