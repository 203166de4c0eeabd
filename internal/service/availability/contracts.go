package availability

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория услуг и окон доступности
type AvailabilityRepository interface {
	GetService(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	ListWindows(ctx context.Context, serviceID uuid.UUID, day *domain.DayOfWeek) ([]*domain.AvailabilityWindow, error)
	GetWindowByID(ctx context.Context, id uuid.UUID) (*domain.AvailabilityWindow, error)
	CreateWindow(ctx context.Context, w *domain.AvailabilityWindow) error
	DeleteWindow(ctx context.Context, id uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
