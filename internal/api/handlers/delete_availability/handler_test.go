package delete_availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeService struct {
	err   error
	calls int
}

func (f *fakeService) Delete(context.Context, domain.Actor, uuid.UUID, uuid.UUID) error {
	f.calls++
	return f.err
}

func TestHandle(t *testing.T) {
	provider := domain.Actor{ID: uuid.New(), Role: domain.RoleProvider}

	tests := []struct {
		name       string
		actor      *domain.Actor
		serviceID  string
		windowID   string
		err        error
		wantStatus int
		wantCalls  int
	}{
		{name: "deleted", actor: &provider, serviceID: uuid.NewString(), windowID: uuid.NewString(), wantStatus: http.StatusNoContent, wantCalls: 1},
		{name: "bad service id", actor: &provider, serviceID: "x", windowID: uuid.NewString(), wantStatus: http.StatusBadRequest},
		{name: "bad window id", actor: &provider, serviceID: uuid.NewString(), windowID: "y", wantStatus: http.StatusBadRequest},
		{name: "no actor", serviceID: uuid.NewString(), windowID: uuid.NewString(), wantStatus: http.StatusUnauthorized},
		{name: "window not found", actor: &provider, serviceID: uuid.NewString(), windowID: uuid.NewString(), err: availability.ErrWindowNotFound, wantStatus: http.StatusNotFound, wantCalls: 1},
		{name: "not owner", actor: &provider, serviceID: uuid.NewString(), windowID: uuid.NewString(), err: availability.ErrNotServiceOwner, wantStatus: http.StatusForbidden, wantCalls: 1},
		{name: "internal", actor: &provider, serviceID: uuid.NewString(), windowID: uuid.NewString(), err: availability.ErrInternal, wantStatus: http.StatusInternalServerError, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodDelete, "/api/v1/services/"+tt.serviceID+"/availability/"+tt.windowID, nil)
			r = mux.SetURLVars(r, map[string]string{"serviceId": tt.serviceID, "windowId": tt.windowID})
			if tt.actor != nil {
				r = r.WithContext(middleware.WithActor(r.Context(), *tt.actor))
			}
			rec := httptest.NewRecorder()
			svc := &fakeService{err: tt.err}

			NewHandler(svc, logger.NewNop()).Handle(rec, r)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalls, svc.calls)
		})
	}
}
