package get_booking

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
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeService struct {
	booking *models.BookingResponse
	err     error
}

func (f *fakeService) GetByID(context.Context, uuid.UUID, domain.Actor) (*models.BookingResponse, error) {
	return f.booking, f.err
}

func TestHandle(t *testing.T) {
	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleConsumer}

	tests := []struct {
		name       string
		bookingID  string
		actor      *domain.Actor
		svc        *fakeService
		wantStatus int
	}{
		{name: "ok", bookingID: uuid.NewString(), actor: &actor, svc: &fakeService{booking: &models.BookingResponse{Status: "pending"}}, wantStatus: http.StatusOK},
		{name: "bad id", bookingID: "abc", actor: &actor, svc: &fakeService{}, wantStatus: http.StatusBadRequest},
		{name: "no actor", bookingID: uuid.NewString(), svc: &fakeService{}, wantStatus: http.StatusUnauthorized},
		{name: "not found", bookingID: uuid.NewString(), actor: &actor, svc: &fakeService{err: bookings.ErrBookingNotFound}, wantStatus: http.StatusNotFound},
		{name: "foreign booking", bookingID: uuid.NewString(), actor: &actor, svc: &fakeService{err: bookings.ErrAccessDenied}, wantStatus: http.StatusForbidden},
		{name: "internal", bookingID: uuid.NewString(), actor: &actor, svc: &fakeService{err: bookings.ErrInternal}, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+tt.bookingID, nil)
			r = mux.SetURLVars(r, map[string]string{"bookingId": tt.bookingID})
			if tt.actor != nil {
				r = r.WithContext(middleware.WithActor(r.Context(), *tt.actor))
			}
			rec := httptest.NewRecorder()

			NewHandler(tt.svc, logger.NewNop()).Handle(rec, r)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
