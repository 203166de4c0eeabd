package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Service управление окнами доступности услуги
type Service struct {
	repo   AvailabilityRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo AvailabilityRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create добавляет окно доступности. Только провайдер услуги.
// Пересечение с существующими окнами допускается.
func (s *Service) Create(ctx context.Context, actor domain.Actor, req *models.CreateWindowRequest) (*models.WindowResponse, error) {
	s.logger.Info("Create: service=%s, day=%s, %s-%s, actor=%s",
		req.ServiceID, req.DayOfWeek, req.StartTime, req.EndTime, actor.ID)

	if err := s.checkOwner(ctx, req.ServiceID, actor); err != nil {
		return nil, err
	}

	window, err := buildWindow(req)
	if err != nil {
		s.logger.Warn("Create: invalid window: %v", err)
		return nil, err
	}

	if err := s.repo.CreateWindow(ctx, window); err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: window id=%s created for service=%s", window.ID, window.ServiceID)
	return models.FromDomainWindow(window), nil
}

// ListByService возвращает окна услуги по порядку дней недели
func (s *Service) ListByService(ctx context.Context, serviceID uuid.UUID) (*models.WindowListResponse, error) {
	if _, err := s.getService(ctx, serviceID); err != nil {
		return nil, err
	}

	windows, err := s.repo.ListWindows(ctx, serviceID, nil)
	if err != nil {
		s.logger.Error("ListByService: repository error for service=%s: %v", serviceID, err)
		return nil, fmt.Errorf("%w: ListByService - repository error: %v", ErrInternal, err)
	}

	result := &models.WindowListResponse{
		ServiceID: serviceID,
		Windows:   make([]models.WindowResponse, 0, len(windows)),
	}
	for _, w := range windows {
		result.Windows = append(result.Windows, *models.FromDomainWindow(w))
	}

	return result, nil
}

// Delete удаляет окно. Уже созданные бронирования не затрагиваются.
func (s *Service) Delete(ctx context.Context, actor domain.Actor, serviceID, windowID uuid.UUID) error {
	s.logger.Info("Delete: window=%s, service=%s, actor=%s", windowID, serviceID, actor.ID)

	if err := s.checkOwner(ctx, serviceID, actor); err != nil {
		return err
	}

	window, err := s.repo.GetWindowByID(ctx, windowID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			return ErrWindowNotFound
		}
		s.logger.Error("Delete: repository error: %v", err)
		return fmt.Errorf("%w: Delete - get window: %v", ErrInternal, err)
	}

	if window.ServiceID != serviceID {
		s.logger.Warn("Delete: window=%s belongs to service=%s, not %s", windowID, window.ServiceID, serviceID)
		return ErrWindowNotFound
	}

	if err := s.repo.DeleteWindow(ctx, windowID); err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			return ErrWindowNotFound
		}
		s.logger.Error("Delete: repository error: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

func (s *Service) getService(ctx context.Context, serviceID uuid.UUID) (*domain.Service, error) {
	service, err := s.repo.GetService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrServiceNotFound) {
			s.logger.Warn("service id=%s not found", serviceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("failed to get service id=%s: %v", serviceID, err)
		return nil, fmt.Errorf("%w: get service: %v", ErrInternal, err)
	}
	return service, nil
}

func (s *Service) checkOwner(ctx context.Context, serviceID uuid.UUID, actor domain.Actor) error {
	service, err := s.getService(ctx, serviceID)
	if err != nil {
		return err
	}

	if !actor.IsProviderOwner(service) {
		s.logger.Warn("actor=%s (%s) is not the provider of service=%s", actor.ID, actor.Role, serviceID)
		return ErrNotServiceOwner
	}

	return nil
}

func buildWindow(req *models.CreateWindowRequest) (*domain.AvailabilityWindow, error) {
	day, err := domain.ParseDayOfWeek(req.DayOfWeek)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}

	window := &domain.AvailabilityWindow{
		ID:        uuid.New(),
		ServiceID: req.ServiceID,
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
	}

	if err := window.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return window, nil
}
