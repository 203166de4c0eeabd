package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// CreateWindowRequest запрос на добавление окна доступности
type CreateWindowRequest struct {
	ServiceID uuid.UUID
	DayOfWeek string // MONDAY или MON, регистр не важен
	StartTime string // HH:MM
	EndTime   string // HH:MM
}

// WindowResponse окно доступности
type WindowResponse struct {
	ID        uuid.UUID `json:"id"`
	ServiceID uuid.UUID `json:"serviceId"`
	DayOfWeek string    `json:"dayOfWeek"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	CreatedAt time.Time `json:"createdAt"`
}

// WindowListResponse окна доступности услуги
type WindowListResponse struct {
	ServiceID uuid.UUID        `json:"serviceId"`
	Windows   []WindowResponse `json:"windows"`
}

// FromDomainWindow конвертирует domain.AvailabilityWindow в WindowResponse
func FromDomainWindow(w *domain.AvailabilityWindow) *WindowResponse {
	return &WindowResponse{
		ID:        w.ID,
		ServiceID: w.ServiceID,
		DayOfWeek: string(w.DayOfWeek),
		StartTime: w.StartTime.String(),
		EndTime:   w.EndTime.String(),
		CreatedAt: w.CreatedAt,
	}
}
