package transition_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	transitionBooking "github.com/m04kA/SMC-SchedulingService/internal/usecase/transition_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownStatus      = "неизвестный статус бронирования"
	msgMissingActor       = "отсутствует ID пользователя"
	msgNotFound           = "бронирование не найдено"
	msgNotRelated         = "доступ запрещен"
	msgRoleNotPermitted   = "роль не может устанавливать этот статус"
	msgTerminalStatus     = "бронирование уже завершено или отменено"
	msgInvalidTransition  = "переход из текущего статуса невозможен"
	msgStatusChanged      = "статус бронирования изменился, повторите запрос"
)

type Handler struct {
	useCase TransitionBookingUseCase
	logger  Logger
}

func NewHandler(useCase TransitionBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	var req TransitionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgUnknownStatus)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &transitionBooking.Request{
		BookingID: bookingID,
		Actor:     actor,
		Status:    req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, transitionBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/status - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrActorNotRelated):
			h.logger.Warn("PATCH /bookings/{id}/status - Access denied: booking_id=%s, user_id=%s", bookingID, actor.ID)
			handlers.RespondForbidden(w, msgNotRelated)

		case errors.Is(err, domain.ErrRoleNotPermitted):
			h.logger.Warn("PATCH /bookings/{id}/status - Role not permitted: booking_id=%s, role=%s, status=%s",
				bookingID, actor.Role, req.Status)
			handlers.RespondForbidden(w, msgRoleNotPermitted)

		case errors.Is(err, domain.ErrTerminalStatus):
			handlers.RespondConflict(w, msgTerminalStatus)

		case errors.Is(err, domain.ErrInvalidTransition):
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, transitionBooking.ErrStatusChanged):
			h.logger.Warn("PATCH /bookings/{id}/status - Concurrent status change: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgStatusChanged)

		case errors.Is(err, domain.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgUnknownStatus)

		default:
			h.logger.Error("PATCH /bookings/{id}/status - Failed to change status: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/status - Status changed: booking_id=%s, status=%s, user_id=%s",
		bookingID, result.Status, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
