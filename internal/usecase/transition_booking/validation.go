package transition_booking

import (
	"fmt"

	"github.com/google/uuid"
)

// validateRequest проверяет обязательные поля запроса
func validateRequest(req *Request) error {
	if req.BookingID == uuid.Nil {
		return fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}

	if req.Actor.ID == uuid.Nil {
		return fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}

	return nil
}
