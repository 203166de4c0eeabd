package create_booking

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// validateRequest проверяет обязательные поля запроса
func validateRequest(req *Request) error {
	if req.ConsumerID == uuid.Nil {
		return fmt.Errorf("%w: consumerID is required", ErrInvalidInput)
	}

	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateTimeRange проверяет формат времени и что начало раньше конца
func validateTimeRange(req *Request) error {
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return ErrInvalidTimeRange
	}

	return nil
}

// validateDate проверяет, что дата не раньше сегодняшней.
// now должен быть уже переведён в зону сервиса.
func validateDate(date, now time.Time) error {
	if domain.IsDateBefore(date, now) {
		return fmt.Errorf("%w: %s", ErrDateInPast, date.Format(domain.DateFormat))
	}
	return nil
}
