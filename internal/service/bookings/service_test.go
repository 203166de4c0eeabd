package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeBookingRepo struct {
	booking    *domain.Booking
	lastFilter domain.BookingsFilter
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	if r.booking == nil || r.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return r.booking, nil
}

func (r *fakeBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.lastFilter = filter
	if r.booking == nil {
		return []*domain.Booking{}, nil
	}
	return []*domain.Booking{r.booking}, nil
}

type fakeServiceRepo struct {
	service *domain.Service
}

func (r *fakeServiceRepo) GetService(_ context.Context, _ uuid.UUID) (*domain.Service, error) {
	return r.service, nil
}

func newService() (*Service, *fakeBookingRepo, *domain.Booking, *domain.Service) {
	svc := &domain.Service{ID: uuid.New(), ProviderID: uuid.New(), IsActive: true}
	notes := "second floor"
	b := &domain.Booking{
		ID:          uuid.New(),
		ServiceID:   svc.ID,
		ConsumerID:  uuid.New(),
		BookingDate: time.Date(2026, 10, 26, 0, 0, 0, 0, time.UTC),
		StartTime:   "09:00",
		EndTime:     "10:00",
		Status:      domain.StatusPending,
		Notes:       &notes,
	}
	repo := &fakeBookingRepo{booking: b}
	return NewService(repo, &fakeServiceRepo{service: svc}, logger.NewNop()), repo, b, svc
}

func TestGetByID_Access(t *testing.T) {
	s, _, b, svc := newService()
	ctx := context.Background()

	resp, err := s.GetByID(ctx, b.ID, domain.Actor{ID: b.ConsumerID, Role: domain.RoleConsumer})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-26", resp.BookingDate)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "pending", resp.Status)

	_, err = s.GetByID(ctx, b.ID, domain.Actor{ID: svc.ProviderID, Role: domain.RoleProvider})
	require.NoError(t, err)

	_, err = s.GetByID(ctx, b.ID, domain.Actor{ID: uuid.New(), Role: domain.RoleConsumer})
	require.ErrorIs(t, err, ErrAccessDenied)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = s.GetByID(ctx, b.ID, domain.Actor{ID: uuid.New(), Role: domain.RoleProvider})
	require.ErrorIs(t, err, ErrAccessDenied)

	// consumer id с ролью провайдера не даёт доступа
	_, err = s.GetByID(ctx, b.ID, domain.Actor{ID: b.ConsumerID, Role: domain.RoleProvider})
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	s, _, _, _ := newService()

	_, err := s.GetByID(context.Background(), uuid.New(), domain.Actor{ID: uuid.New(), Role: domain.RoleConsumer})
	require.ErrorIs(t, err, ErrBookingNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_FiltersByRole(t *testing.T) {
	s, repo, _, _ := newService()
	ctx := context.Background()
	consumer := domain.Actor{ID: uuid.New(), Role: domain.RoleConsumer}
	provider := domain.Actor{ID: uuid.New(), Role: domain.RoleProvider}

	resp, err := s.List(ctx, &models.ListBookingsRequest{Actor: consumer})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.NotNil(t, repo.lastFilter.ConsumerID)
	assert.Equal(t, consumer.ID, *repo.lastFilter.ConsumerID)
	assert.Nil(t, repo.lastFilter.ProviderID)

	status := "CONFIRMED"
	_, err = s.List(ctx, &models.ListBookingsRequest{Actor: provider, Status: &status, ActiveOnly: true})
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.ProviderID)
	assert.Equal(t, provider.ID, *repo.lastFilter.ProviderID)
	assert.Nil(t, repo.lastFilter.ConsumerID)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *repo.lastFilter.Status)
	assert.True(t, repo.lastFilter.ActiveOnly)
}

func TestList_InvalidStatus(t *testing.T) {
	s, _, _, _ := newService()
	status := "archived"

	_, err := s.List(context.Background(), &models.ListBookingsRequest{
		Actor:  domain.Actor{ID: uuid.New(), Role: domain.RoleConsumer},
		Status: &status,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
