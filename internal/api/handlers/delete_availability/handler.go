package delete_availability

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
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidWindowID  = "некорректный ID окна доступности"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgServiceNotFound  = "услуга не найдена"
	msgWindowNotFound   = "окно доступности не найдено"
	msgNotOwner         = "управлять расписанием может только провайдер услуги"
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

// Handle DELETE /api/v1/services/{serviceId}/availability/{windowId}
// Существующие бронирования не затрагиваются.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	serviceID, err := uuid.Parse(vars["serviceId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	windowID, err := uuid.Parse(vars["windowId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidWindowID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), actor, serviceID, windowID); err != nil {
		switch {
		case errors.Is(err, availability.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, availability.ErrWindowNotFound):
			h.logger.Warn("DELETE /services/{id}/availability/{windowId} - Window not found: service_id=%s, window_id=%s",
				serviceID, windowID)
			handlers.RespondNotFound(w, msgWindowNotFound)

		case errors.Is(err, availability.ErrNotServiceOwner):
			h.logger.Warn("DELETE /services/{id}/availability/{windowId} - Not owner: service_id=%s, user_id=%s",
				serviceID, actor.ID)
			handlers.RespondForbidden(w, msgNotOwner)

		default:
			h.logger.Error("DELETE /services/{id}/availability/{windowId} - Failed to delete window: window_id=%s, error=%v",
				windowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /services/{id}/availability/{windowId} - Window deleted: service_id=%s, window_id=%s",
		serviceID, windowID)
	w.WriteHeader(http.StatusNoContent)
}
