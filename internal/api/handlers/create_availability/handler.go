package create_availability

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability"
)

const (
	msgInvalidServiceID   = "некорректный ID услуги"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgServiceNotFound    = "услуга не найдена"
	msgNotOwner           = "управлять расписанием может только провайдер услуги"
	msgInvalidWindow      = "некорректное окно доступности"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/services/{serviceId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID, err := uuid.Parse(mux.Vars(r)["serviceId"])
	if err != nil {
		h.logger.Warn("POST /services/{id}/availability - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /services/{id}/availability - Validation failed: %v", err)
		var verrs handlers.ValidationErrors
		if errors.As(err, &verrs) {
			handlers.RespondValidationError(w, msgValidationFailed, verrs)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	window, err := h.service.Create(r.Context(), actor, req.ToServiceRequest(serviceID))
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrServiceNotFound):
			h.logger.Warn("POST /services/{id}/availability - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, availability.ErrNotServiceOwner):
			h.logger.Warn("POST /services/{id}/availability - Not owner: service_id=%s, user_id=%s", serviceID, actor.ID)
			handlers.RespondForbidden(w, msgNotOwner)

		case errors.Is(err, availability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("POST /services/{id}/availability - Failed to create window: service_id=%s, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services/{id}/availability - Window created: window_id=%s, service_id=%s, %s %s-%s",
		window.ID, serviceID, window.DayOfWeek, window.StartTime, window.EndTime)
	handlers.RespondJSON(w, http.StatusCreated, window)
}
