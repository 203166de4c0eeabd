package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

type fakeUseCase struct {
	execute func(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
	calls   int
}

func (f *fakeUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.calls++
	return f.execute(ctx, req)
}

func serve(uc GetAvailableSlotsUseCase, serviceID, query string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/services/"+serviceID+"/free-slots"+query, nil)
	r = mux.SetURLVars(r, map[string]string{"serviceId": serviceID})
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, r)
	return rec
}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func TestHandle_OK(t *testing.T) {
	serviceID := uuid.New()
	windowID := uuid.New()

	uc := &fakeUseCase{execute: func(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
		assert.Equal(t, serviceID, req.ServiceID)
		return &getAvailableSlots.Response{
			Date:      req.Date,
			ServiceID: req.ServiceID,
			DayOfWeek: domain.Monday,
			Slots: []getAvailableSlots.Slot{
				{WindowID: windowID, StartTime: mustTime(t, "09:00"), EndTime: mustTime(t, "10:00")},
				{WindowID: windowID, StartTime: mustTime(t, "11:00"), EndTime: mustTime(t, "12:00")},
			},
		}, nil
	}}

	rec := serve(uc, serviceID.String(), "?date=2026-10-19")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp FreeSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-10-19", resp.Date)
	assert.Equal(t, "MONDAY", resp.DayOfWeek)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "10:00", resp.Slots[0].EndTime)
	assert.Equal(t, "11:00", resp.Slots[1].StartTime)
}

func TestHandle_EmptySlotsIsArray(t *testing.T) {
	uc := &fakeUseCase{execute: func(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
		return &getAvailableSlots.Response{Date: req.Date, ServiceID: req.ServiceID, DayOfWeek: domain.Sunday}, nil
	}}

	rec := serve(uc, uuid.NewString(), "?date=2026-10-25")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slots":[]`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceID  string
		query      string
		err        error
		wantStatus int
		wantCalls  int
	}{
		{name: "bad service id", serviceID: "1", query: "?date=2026-10-19", wantStatus: http.StatusBadRequest},
		{name: "missing date", serviceID: uuid.NewString(), wantStatus: http.StatusBadRequest},
		{name: "bad date", serviceID: uuid.NewString(), query: "?date=2026-13-01", wantStatus: http.StatusBadRequest},
		{name: "not found", serviceID: uuid.NewString(), query: "?date=2026-10-19", err: getAvailableSlots.ErrServiceNotFound, wantStatus: http.StatusNotFound, wantCalls: 1},
		{name: "internal", serviceID: uuid.NewString(), query: "?date=2026-10-19", err: getAvailableSlots.ErrInternal, wantStatus: http.StatusInternalServerError, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{execute: func(context.Context, *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
				return nil, tt.err
			}}
			rec := serve(uc, tt.serviceID, tt.query)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalls, uc.calls)
		})
	}
}
