package transition_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
)

// UseCase use case смены статуса бронирования
type UseCase struct {
	bookingRepo BookingRepository
	serviceRepo ServiceRepository
	txManager   TransactionManager
	publisher   EventPublisher
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
	}
}

// Execute переводит бронирование в новый статус.
// Запись выполняется как compare-and-set по прочитанному статусу: если статус успел
// измениться, возвращается ErrStatusChanged.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TransitionBooking: booking=%s, actor=%s (%s), status=%s",
		req.BookingID, req.Actor.ID, req.Actor.Role, req.Status)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("TransitionBooking: validation failed: %v", err)
		return nil, err
	}

	// 1. Неизвестный статус отклоняется до обращения к БД
	target, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		uc.logger.Warn("TransitionBooking: %v", err)
		return nil, err
	}

	// 2. Бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("TransitionBooking: booking id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("TransitionBooking: failed to get booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Услуга нужна для проверки провайдера
	service, err := uc.serviceRepo.GetService(ctx, booking.ServiceID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrServiceNotFound) {
			uc.logger.Error("TransitionBooking: booking id=%s references missing service id=%s", booking.ID, booking.ServiceID)
		} else {
			uc.logger.Error("TransitionBooking: failed to get service id=%s: %v", booking.ServiceID, err)
		}
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Автомат состояний и права
	if err := domain.AuthorizeTransition(req.Actor, booking, service, target); err != nil {
		uc.logger.Warn("TransitionBooking: booking id=%s %s -> %s rejected for actor=%s: %v",
			booking.ID, booking.Status, target, req.Actor.ID, err)
		return nil, err
	}

	from := booking.Status
	var event *domain.BookingEvent

	// 5. Запись статуса и журнала в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		updatedAt, err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, from, target)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrStaleStatus) {
				uc.logger.Warn("TransitionBooking: booking id=%s is no longer %s", booking.ID, from)
				return ErrStatusChanged
			}
			uc.logger.Error("TransitionBooking: failed to update status: %v", err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		booking.Status = target
		booking.UpdatedAt = updatedAt

		event = domain.NewStatusChangedEvent(booking, from, req.Actor)
		if err := uc.bookingRepo.InsertEvent(txCtx, event); err != nil {
			uc.logger.Error("TransitionBooking: failed to record event: %v", err)
			return fmt.Errorf("%w: failed to record event: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrStatusChanged) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("TransitionBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("TransitionBooking: booking id=%s %s -> %s", booking.ID, from, target)

	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("TransitionBooking: failed to publish %s for booking id=%s: %v", event.Type, booking.ID, err)
	}

	return &Response{
		ID:          booking.ID,
		ServiceID:   booking.ServiceID,
		ConsumerID:  booking.ConsumerID,
		BookingDate: booking.BookingDate,
		StartTime:   booking.StartTime,
		EndTime:     booking.EndTime,
		Status:      string(booking.Status),
		Notes:       booking.Notes,
		CreatedAt:   booking.CreatedAt,
		UpdatedAt:   booking.UpdatedAt,
	}, nil
}
