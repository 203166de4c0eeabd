package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	publisher        EventPublisher
	timeProvider     TimeProvider
	location         *time.Location
	logger           Logger
}

// NewUseCase создает новый экземпляр use case.
// location - зона, в которой вычисляется "сегодня" (nil = UTC).
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		publisher:        publisher,
		timeProvider:     &RealTimeProvider{},
		location:         location,
		logger:           logger,
	}
}

// Execute создает бронирование в статусе pending.
// Проверка конфликтов и вставка выполняются в одной сериализуемой транзакции
// под advisory-блокировкой (услуга, дата).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: consumer=%s, service=%s, date=%s, time=%s-%s",
		req.ConsumerID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 0. Валидация обязательных полей
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 1. Получаем услугу
	service, err := uc.availabilityRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsActive {
		uc.logger.Warn("CreateBooking: service id=%s is not active", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// 2. Нельзя бронировать собственную услугу
	if service.ProviderID == req.ConsumerID {
		uc.logger.Warn("CreateBooking: consumer=%s tried to book own service id=%s", req.ConsumerID, req.ServiceID)
		return nil, ErrSelfBooking
	}

	// 3. Интервал
	if err := validateTimeRange(req); err != nil {
		uc.logger.Warn("CreateBooking: invalid time range: %v", err)
		return nil, err
	}

	// 4. Дата не в прошлом
	now := uc.timeProvider.Now().In(uc.location)
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	day := domain.DayOfWeekOf(date)

	booking := &domain.Booking{
		ID:          uuid.New(),
		ServiceID:   req.ServiceID,
		ConsumerID:  req.ConsumerID,
		BookingDate: date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      domain.StatusPending,
		Notes:       req.Notes,
	}
	event := domain.NewCreatedEvent(booking, domain.Actor{ID: req.ConsumerID, Role: domain.RoleConsumer})

	// 5-7. Выполняем проверки и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Все создания на эту услугу и дату выстраиваются в очередь
		if err := uc.bookingRepo.LockSlot(txCtx, req.ServiceID, date); err != nil {
			uc.logger.Error("CreateBooking: failed to lock slot: %v", err)
			return fmt.Errorf("%w: failed to lock slot: %w", ErrInternal, err)
		}

		windows, err := uc.availabilityRepo.ListWindows(txCtx, req.ServiceID, &day)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get availability windows: %v", err)
			return fmt.Errorf("%w: failed to get availability windows: %w", ErrInternal, err)
		}

		if !domain.IsSlotAvailable(windows, day, req.StartTime, req.EndTime) {
			uc.logger.Warn("CreateBooking: %s %s-%s is outside availability of service id=%s",
				day, req.StartTime, req.EndTime, req.ServiceID)
			return ErrSlotNotAvailable
		}

		existing, err := uc.bookingRepo.GetActiveByServiceAndDate(txCtx, req.ServiceID, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		if conflict := domain.FindConflict(existing, req.StartTime, req.EndTime); conflict != nil {
			uc.logger.Warn("CreateBooking: slot %s-%s overlaps booking id=%s (%s-%s)",
				req.StartTime, req.EndTime, conflict.ID, conflict.StartTime, conflict.EndTime)
			return ErrSlotAlreadyBooked
		}

		if err := uc.bookingRepo.Create(txCtx, booking); err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot %s-%s taken concurrently", req.StartTime, req.EndTime)
				return ErrSlotAlreadyBooked
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		if err := uc.bookingRepo.InsertEvent(txCtx, event); err != nil {
			uc.logger.Error("CreateBooking: failed to record event: %v", err)
			return fmt.Errorf("%w: failed to record event: %w", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		// Конкурентная транзакция успела занять слот
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("CreateBooking: serialization failure for service=%s date=%s: %v",
				req.ServiceID, date.Format(domain.DateFormat), err)
			return nil, ErrSlotAlreadyBooked
		}
		if errors.Is(err, txmanager.ErrBeginTx) || errors.Is(err, txmanager.ErrCommit) {
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", booking.ID)

	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish %s for booking id=%s: %v", event.Type, booking.ID, err)
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
