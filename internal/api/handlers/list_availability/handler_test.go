package list_availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SchedulingService/internal/service/availability"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeService struct {
	resp *models.WindowListResponse
	err  error
}

func (f *fakeService) ListByService(context.Context, uuid.UUID) (*models.WindowListResponse, error) {
	return f.resp, f.err
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		serviceID  string
		svc        *fakeService
		wantStatus int
	}{
		{name: "ok", serviceID: uuid.NewString(), svc: &fakeService{resp: &models.WindowListResponse{Windows: []models.WindowResponse{{DayOfWeek: "MONDAY"}}}}, wantStatus: http.StatusOK},
		{name: "bad id", serviceID: "svc", svc: &fakeService{}, wantStatus: http.StatusBadRequest},
		{name: "not found", serviceID: uuid.NewString(), svc: &fakeService{err: availability.ErrServiceNotFound}, wantStatus: http.StatusNotFound},
		{name: "internal", serviceID: uuid.NewString(), svc: &fakeService{err: availability.ErrInternal}, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/v1/services/"+tt.serviceID+"/availability", nil)
			r = mux.SetURLVars(r, map[string]string{"serviceId": tt.serviceID})
			rec := httptest.NewRecorder()

			NewHandler(tt.svc, logger.NewNop()).Handle(rec, r)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
