package create_availability

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/service/availability/models"
)

// CreateWindowRequest HTTP request model
type CreateWindowRequest struct {
	DayOfWeek string `json:"dayOfWeek" validate:"required,day_of_week"` // MONDAY или MON
	StartTime string `json:"startTime" validate:"required,hhmm"`
	EndTime   string `json:"endTime" validate:"required,hhmm"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateWindowRequest) ToServiceRequest(serviceID uuid.UUID) *models.CreateWindowRequest {
	return &models.CreateWindowRequest{
		ServiceID: serviceID,
		DayOfWeek: r.DayOfWeek,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}
