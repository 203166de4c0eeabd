package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = fmt.Errorf("create_booking: service not found: %w", domain.ErrNotFound)

	// ErrServiceInactive возвращается, когда услуга снята с публикации
	ErrServiceInactive = fmt.Errorf("create_booking: service is not active: %w", domain.ErrInvalidState)

	// ErrSelfBooking возвращается, когда провайдер пытается забронировать собственную услугу
	ErrSelfBooking = fmt.Errorf("create_booking: cannot book your own service: %w", domain.ErrInvalidInput)

	// ErrInvalidTimeRange возвращается, когда время начала не раньше времени окончания
	ErrInvalidTimeRange = fmt.Errorf("create_booking: start time must be before end time: %w", domain.ErrInvalidInput)

	// ErrDateInPast возвращается при бронировании на прошедшую дату
	ErrDateInPast = fmt.Errorf("create_booking: booking date is in the past: %w", domain.ErrInvalidInput)

	// ErrSlotNotAvailable возвращается, когда интервал не попадает целиком ни в одно окно доступности
	ErrSlotNotAvailable = fmt.Errorf("create_booking: slot is not available: %w", domain.ErrConflict)

	// ErrSlotAlreadyBooked возвращается, когда интервал пересекается с активным бронированием
	ErrSlotAlreadyBooked = fmt.Errorf("create_booking: slot already booked: %w", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("create_booking: invalid input data: %w", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
