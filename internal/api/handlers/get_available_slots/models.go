package get_available_slots

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
)

// FreeSlotsResponse HTTP response model
type FreeSlotsResponse struct {
	ServiceID uuid.UUID  `json:"serviceId"`
	Date      string     `json:"date"`
	DayOfWeek string     `json:"dayOfWeek"`
	Slots     []SlotItem `json:"slots"`
}

// SlotItem свободный интервал [startTime, endTime)
type SlotItem struct {
	WindowID  uuid.UUID `json:"windowId"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *FreeSlotsResponse {
	slots := make([]SlotItem, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotItem{
			WindowID:  s.WindowID,
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
		})
	}

	return &FreeSlotsResponse{
		ServiceID: resp.ServiceID,
		Date:      resp.Date.Format(domain.DateFormat),
		DayOfWeek: string(resp.DayOfWeek),
		Slots:     slots,
	}
}
