package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
)

// Service сервис чтения бронирований с проверкой прав
type Service struct {
	bookingRepo BookingRepository
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Доступно consumer, создавшему бронирование, и провайдеру - владельцу услуги.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, actor domain.Actor) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for actor=%s (%s)", id, actor.ID, actor.Role)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkAccess(ctx, booking, actor); err != nil {
		s.logger.Warn("GetByID: access denied for actor=%s to booking id=%s", actor.ID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// List возвращает бронирования actor: consumer видит свои, провайдер - бронирования своих услуг
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings for actor=%s (%s)", req.Actor.ID, req.Actor.Role)

	filter := domain.BookingsFilter{
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		ActiveOnly: req.ActiveOnly,
	}

	switch req.Actor.Role {
	case domain.RoleConsumer:
		filter.ConsumerID = &req.Actor.ID
	case domain.RoleProvider:
		filter.ProviderID = &req.Actor.ID
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Actor.Role)
	}

	if req.Status != nil {
		status, err := domain.ParseBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for actor=%s: %v", req.Actor.ID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings for actor=%s", len(bookings), req.Actor.ID)
	return models.FromDomainBookingList(bookings), nil
}

// checkAccess проверяет, что actor - владелец бронирования или услуги
func (s *Service) checkAccess(ctx context.Context, booking *domain.Booking, actor domain.Actor) error {
	if actor.IsConsumerOwner(booking) {
		return nil
	}

	if actor.Role != domain.RoleProvider {
		return ErrAccessDenied
	}

	service, err := s.serviceRepo.GetService(ctx, booking.ServiceID)
	if err != nil {
		s.logger.Error("checkAccess: failed to get service id=%s: %v", booking.ServiceID, err)
		return fmt.Errorf("%w: checkAccess - get service: %v", ErrInternal, err)
	}

	if !actor.IsProviderOwner(service) {
		return ErrAccessDenied
	}

	return nil
}
