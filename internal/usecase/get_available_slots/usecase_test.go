package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (r *fakeBookingRepo) GetActiveByServiceAndDate(_ context.Context, _ uuid.UUID, _ time.Time) ([]*domain.Booking, error) {
	return r.bookings, nil
}

type fakeAvailabilityRepo struct {
	service *domain.Service
	windows []*domain.AvailabilityWindow
}

func (r *fakeAvailabilityRepo) GetService(_ context.Context, id uuid.UUID) (*domain.Service, error) {
	if r.service == nil || r.service.ID != id {
		return nil, availabilityRepo.ErrServiceNotFound
	}
	return r.service, nil
}

func (r *fakeAvailabilityRepo) ListWindows(_ context.Context, _ uuid.UUID, day *domain.DayOfWeek) ([]*domain.AvailabilityWindow, error) {
	result := make([]*domain.AvailabilityWindow, 0)
	for _, w := range r.windows {
		if w.DayOfWeek == *day {
			result = append(result, w)
		}
	}
	return result, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func booking(start, end types.TimeString, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{ID: uuid.New(), StartTime: start, EndTime: end, Status: status}
}

func newUseCase(service *domain.Service, windows []*domain.AvailabilityWindow, bookings []*domain.Booking) *UseCase {
	uc := NewUseCase(&fakeBookingRepo{bookings: bookings}, &fakeAvailabilityRepo{service: service, windows: windows}, time.UTC, logger.NewNop())
	uc.timeProvider = fixedTime{now: time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)}
	return uc
}

func intervals(slots []Slot) []string {
	result := make([]string, len(slots))
	for i, s := range slots {
		result[i] = s.StartTime.String() + "-" + s.EndTime.String()
	}
	return result
}

func TestExecute_SubtractsActiveBookings(t *testing.T) {
	service := &domain.Service{ID: uuid.New(), IsActive: true}
	windows := []*domain.AvailabilityWindow{
		{ID: uuid.New(), DayOfWeek: domain.Monday, StartTime: "08:00", EndTime: "12:00"},
		{ID: uuid.New(), DayOfWeek: domain.Monday, StartTime: "14:00", EndTime: "18:00"},
		{ID: uuid.New(), DayOfWeek: domain.Tuesday, StartTime: "08:00", EndTime: "18:00"},
	}
	bookings := []*domain.Booking{
		booking("10:00", "11:00", domain.StatusConfirmed),
		booking("09:00", "10:00", domain.StatusPending),
		booking("11:30", "12:30", domain.StatusPending),
		booking("15:00", "16:00", domain.StatusCancelled),
	}

	uc := newUseCase(service, windows, bookings)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: service.ID, Date: time.Date(2026, 10, 26, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	assert.Equal(t, domain.Monday, resp.DayOfWeek)
	assert.Equal(t, []string{"08:00-09:00", "11:00-11:30", "14:00-18:00"}, intervals(resp.Slots))
	assert.Equal(t, windows[0].ID, resp.Slots[0].WindowID)
	assert.Equal(t, windows[1].ID, resp.Slots[2].WindowID)
}

func TestExecute_EmptyCases(t *testing.T) {
	service := &domain.Service{ID: uuid.New(), IsActive: true}
	windows := []*domain.AvailabilityWindow{
		{ID: uuid.New(), DayOfWeek: domain.Monday, StartTime: "08:00", EndTime: "12:00"},
	}

	t.Run("past date", func(t *testing.T) {
		uc := newUseCase(service, windows, nil)
		resp, err := uc.Execute(context.Background(), &Request{ServiceID: service.ID, Date: time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("no windows that day", func(t *testing.T) {
		uc := newUseCase(service, windows, nil)
		resp, err := uc.Execute(context.Background(), &Request{ServiceID: service.ID, Date: time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC)})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("fully booked", func(t *testing.T) {
		uc := newUseCase(service, windows, []*domain.Booking{booking("07:00", "12:30", domain.StatusConfirmed)})
		resp, err := uc.Execute(context.Background(), &Request{ServiceID: service.ID, Date: time.Date(2026, 10, 26, 0, 0, 0, 0, time.UTC)})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("inactive service", func(t *testing.T) {
		inactive := &domain.Service{ID: uuid.New(), IsActive: false}
		uc := newUseCase(inactive, windows, nil)
		resp, err := uc.Execute(context.Background(), &Request{ServiceID: inactive.ID, Date: time.Date(2026, 10, 26, 0, 0, 0, 0, time.UTC)})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})
}

func TestExecute_TodayKeepsWholeWindow(t *testing.T) {
	service := &domain.Service{ID: uuid.New(), IsActive: true}
	windows := []*domain.AvailabilityWindow{
		{ID: uuid.New(), DayOfWeek: domain.Monday, StartTime: "08:00", EndTime: "12:00"},
	}
	uc := newUseCase(service, windows, nil)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: service.ID, Date: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00-12:00"}, intervals(resp.Slots))
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newUseCase(nil, nil, nil)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: uuid.New(), Date: time.Date(2026, 10, 26, 0, 0, 0, 0, time.UTC)})
	require.ErrorIs(t, err, ErrServiceNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFreeSlots_OverlappingWindows(t *testing.T) {
	windows := []*domain.AvailabilityWindow{
		{ID: uuid.New(), DayOfWeek: domain.Friday, StartTime: "09:00", EndTime: "12:00"},
		{ID: uuid.New(), DayOfWeek: domain.Friday, StartTime: "11:00", EndTime: "13:00"},
	}
	bookings := []*domain.Booking{booking("11:00", "11:30", domain.StatusPending)}

	assert.Equal(t, []string{"09:00-11:00", "11:30-12:00", "11:30-13:00"}, intervals(freeSlots(windows, bookings)))
}

// Каждый свободный интервал должен проходить проверки создания бронирования
func TestFreeSlots_AreBookable(t *testing.T) {
	windows := []*domain.AvailabilityWindow{
		{ID: uuid.New(), DayOfWeek: domain.Monday, StartTime: "08:00", EndTime: "18:00"},
	}
	bookings := []*domain.Booking{
		booking("08:30", "09:00", domain.StatusPending),
		booking("12:00", "13:15", domain.StatusConfirmed),
		booking("17:45", "18:00", domain.StatusConfirmed),
	}

	for _, s := range freeSlots(windows, bookings) {
		assert.True(t, domain.IsSlotAvailable(windows, domain.Monday, s.StartTime, s.EndTime), "%s-%s", s.StartTime, s.EndTime)
		assert.Nil(t, domain.FindConflict(bookings, s.StartTime, s.EndTime), "%s-%s", s.StartTime, s.EndTime)
	}
}
