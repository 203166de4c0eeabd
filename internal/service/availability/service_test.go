package availability

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeRepo struct {
	service *domain.Service
	windows map[uuid.UUID]*domain.AvailabilityWindow
}

func (r *fakeRepo) GetService(_ context.Context, id uuid.UUID) (*domain.Service, error) {
	if r.service == nil || r.service.ID != id {
		return nil, availabilityRepo.ErrServiceNotFound
	}
	return r.service, nil
}

func (r *fakeRepo) ListWindows(_ context.Context, serviceID uuid.UUID, _ *domain.DayOfWeek) ([]*domain.AvailabilityWindow, error) {
	result := make([]*domain.AvailabilityWindow, 0)
	for _, w := range r.windows {
		if w.ServiceID == serviceID {
			result = append(result, w)
		}
	}
	return result, nil
}

func (r *fakeRepo) GetWindowByID(_ context.Context, id uuid.UUID) (*domain.AvailabilityWindow, error) {
	w, ok := r.windows[id]
	if !ok {
		return nil, availabilityRepo.ErrWindowNotFound
	}
	return w, nil
}

func (r *fakeRepo) CreateWindow(_ context.Context, w *domain.AvailabilityWindow) error {
	r.windows[w.ID] = w
	return nil
}

func (r *fakeRepo) DeleteWindow(_ context.Context, id uuid.UUID) error {
	if _, ok := r.windows[id]; !ok {
		return availabilityRepo.ErrWindowNotFound
	}
	delete(r.windows, id)
	return nil
}

func newService() (*Service, *fakeRepo, domain.Actor) {
	provider := domain.Actor{ID: uuid.New(), Role: domain.RoleProvider}
	repo := &fakeRepo{
		service: &domain.Service{ID: uuid.New(), ProviderID: provider.ID, IsActive: true},
		windows: map[uuid.UUID]*domain.AvailabilityWindow{},
	}
	return NewService(repo, logger.NewNop()), repo, provider
}

func TestCreate(t *testing.T) {
	s, repo, provider := newService()

	resp, err := s.Create(context.Background(), provider, &models.CreateWindowRequest{
		ServiceID: repo.service.ID,
		DayOfWeek: "mon",
		StartTime: "8:00",
		EndTime:   "18:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "MONDAY", resp.DayOfWeek)
	assert.Equal(t, "08:00", resp.StartTime)
	assert.Equal(t, "18:00", resp.EndTime)
	assert.Len(t, repo.windows, 1)
}

func TestCreate_OverlappingWindowsAllowed(t *testing.T) {
	s, repo, provider := newService()
	ctx := context.Background()

	_, err := s.Create(ctx, provider, &models.CreateWindowRequest{ServiceID: repo.service.ID, DayOfWeek: "MONDAY", StartTime: "08:00", EndTime: "12:00"})
	require.NoError(t, err)
	_, err = s.Create(ctx, provider, &models.CreateWindowRequest{ServiceID: repo.service.ID, DayOfWeek: "MONDAY", StartTime: "10:00", EndTime: "14:00"})
	require.NoError(t, err)

	assert.Len(t, repo.windows, 2)
}

func TestCreate_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		actor    func(provider domain.Actor) domain.Actor
		req      func(serviceID uuid.UUID) *models.CreateWindowRequest
		wantErr  error
		wantKind error
	}{
		{
			name:  "start after end",
			actor: func(p domain.Actor) domain.Actor { return p },
			req: func(id uuid.UUID) *models.CreateWindowRequest {
				return &models.CreateWindowRequest{ServiceID: id, DayOfWeek: "MONDAY", StartTime: "18:00", EndTime: "08:00"}
			},
			wantErr:  ErrInvalidInput,
			wantKind: domain.ErrInvalidInput,
		},
		{
			name:  "unknown day",
			actor: func(p domain.Actor) domain.Actor { return p },
			req: func(id uuid.UUID) *models.CreateWindowRequest {
				return &models.CreateWindowRequest{ServiceID: id, DayOfWeek: "HOLIDAY", StartTime: "08:00", EndTime: "18:00"}
			},
			wantErr:  ErrInvalidInput,
			wantKind: domain.ErrInvalidInput,
		},
		{
			name:  "malformed time",
			actor: func(p domain.Actor) domain.Actor { return p },
			req: func(id uuid.UUID) *models.CreateWindowRequest {
				return &models.CreateWindowRequest{ServiceID: id, DayOfWeek: "MONDAY", StartTime: "08:00", EndTime: "24:00"}
			},
			wantErr:  ErrInvalidInput,
			wantKind: domain.ErrInvalidInput,
		},
		{
			name:  "another provider",
			actor: func(domain.Actor) domain.Actor { return domain.Actor{ID: uuid.New(), Role: domain.RoleProvider} },
			req: func(id uuid.UUID) *models.CreateWindowRequest {
				return &models.CreateWindowRequest{ServiceID: id, DayOfWeek: "MONDAY", StartTime: "08:00", EndTime: "18:00"}
			},
			wantErr:  ErrNotServiceOwner,
			wantKind: domain.ErrUnauthorized,
		},
		{
			name:  "consumer",
			actor: func(p domain.Actor) domain.Actor { return domain.Actor{ID: p.ID, Role: domain.RoleConsumer} },
			req: func(id uuid.UUID) *models.CreateWindowRequest {
				return &models.CreateWindowRequest{ServiceID: id, DayOfWeek: "MONDAY", StartTime: "08:00", EndTime: "18:00"}
			},
			wantErr:  ErrNotServiceOwner,
			wantKind: domain.ErrUnauthorized,
		},
		{
			name:  "unknown service",
			actor: func(p domain.Actor) domain.Actor { return p },
			req: func(uuid.UUID) *models.CreateWindowRequest {
				return &models.CreateWindowRequest{ServiceID: uuid.New(), DayOfWeek: "MONDAY", StartTime: "08:00", EndTime: "18:00"}
			},
			wantErr:  ErrServiceNotFound,
			wantKind: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo, provider := newService()

			_, err := s.Create(context.Background(), tt.actor(provider), tt.req(repo.service.ID))
			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, tt.wantKind)
			assert.Empty(t, repo.windows)
		})
	}
}

func TestListByService(t *testing.T) {
	s, repo, provider := newService()
	ctx := context.Background()

	_, err := s.Create(ctx, provider, &models.CreateWindowRequest{ServiceID: repo.service.ID, DayOfWeek: "TUE", StartTime: "08:00", EndTime: "12:00"})
	require.NoError(t, err)

	resp, err := s.ListByService(ctx, repo.service.ID)
	require.NoError(t, err)
	require.Len(t, resp.Windows, 1)
	assert.Equal(t, "TUESDAY", resp.Windows[0].DayOfWeek)

	_, err = s.ListByService(ctx, uuid.New())
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestDelete(t *testing.T) {
	s, repo, provider := newService()
	ctx := context.Background()

	created, err := s.Create(ctx, provider, &models.CreateWindowRequest{ServiceID: repo.service.ID, DayOfWeek: "FRI", StartTime: "08:00", EndTime: "12:00"})
	require.NoError(t, err)

	stranger := domain.Actor{ID: uuid.New(), Role: domain.RoleProvider}
	require.ErrorIs(t, s.Delete(ctx, stranger, repo.service.ID, created.ID), ErrNotServiceOwner)

	require.NoError(t, s.Delete(ctx, provider, repo.service.ID, created.ID))
	assert.Empty(t, repo.windows)

	require.ErrorIs(t, s.Delete(ctx, provider, repo.service.ID, created.ID), ErrWindowNotFound)
}

func TestDelete_WindowOfAnotherService(t *testing.T) {
	s, repo, provider := newService()
	foreign := &domain.AvailabilityWindow{ID: uuid.New(), ServiceID: uuid.New(), DayOfWeek: domain.Monday, StartTime: "08:00", EndTime: "09:00"}
	repo.windows[foreign.ID] = foreign

	err := s.Delete(context.Background(), provider, repo.service.ID, foreign.ID)
	require.ErrorIs(t, err, ErrWindowNotFound)
	assert.Len(t, repo.windows, 1)
}
