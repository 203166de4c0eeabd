package list_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
)

// ListQuery параметры запроса ?serviceId=&date=&status=&active=
type ListQuery struct {
	ServiceID string `validate:"omitempty,uuid" json:"serviceId"`
	Date      string `validate:"omitempty,date" json:"date"`
	Status    string `validate:"omitempty,booking_status" json:"status"`
	Active    string `validate:"omitempty,boolean" json:"active"`
}

func queryFromURL(values url.Values) ListQuery {
	return ListQuery{
		ServiceID: values.Get("serviceId"),
		Date:      values.Get("date"),
		Status:    values.Get("status"),
		Active:    values.Get("active"),
	}
}

// ToServiceRequest конвертирует параметры в модель сервиса. Формат уже проверен валидатором.
func (q ListQuery) ToServiceRequest(actor domain.Actor) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{Actor: actor}

	if q.ServiceID != "" {
		id, err := uuid.Parse(q.ServiceID)
		if err != nil {
			return nil, err
		}
		req.ServiceID = &id
	}

	if q.Date != "" {
		date, err := time.Parse(domain.DateFormat, q.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if q.Status != "" {
		status := q.Status
		req.Status = &status
	}

	if q.Active != "" {
		active, err := strconv.ParseBool(q.Active)
		if err != nil {
			return nil, err
		}
		req.ActiveOnly = active
	}

	return req, nil
}
