package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings"
)

const (
	msgMissingUserID   = "отсутствует ID пользователя"
	msgInvalidQuery    = "некорректные параметры запроса"
	msgValidationError = "ошибка валидации параметров"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Потребитель видит свои бронирования, провайдер - бронирования своих услуг.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := queryFromURL(r.URL.Query())
	if err := handlers.Validate(query); err != nil {
		h.logger.Warn("GET /bookings - Invalid query: %v", err)
		var verrs handlers.ValidationErrors
		if errors.As(err, &verrs) {
			handlers.RespondValidationError(w, msgValidationError, verrs)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	req, err := query.ToServiceRequest(actor)
	if err != nil {
		h.logger.Warn("GET /bookings - Failed to parse query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: user_id=%s, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved: user_id=%s, role=%s, count=%d", actor.ID, actor.Role, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
