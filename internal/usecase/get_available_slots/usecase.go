package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/availability"
)

// UseCase use case для получения свободных интервалов услуги на дату
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	timeProvider     TimeProvider
	location         *time.Location
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		timeProvider:     &RealTimeProvider{},
		location:         location,
		logger:           logger,
	}
}

// Execute возвращает свободные интервалы.
// Для прошедших дат и неактивных услуг список пуст.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%s, date=%s", req.ServiceID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	day := domain.DayOfWeekOf(date)

	response := &Response{
		Date:      date,
		ServiceID: req.ServiceID,
		DayOfWeek: day,
		Slots:     []Slot{},
	}

	service, err := uc.availabilityRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsActive {
		uc.logger.Info("GetAvailableSlots: service id=%s is not active", req.ServiceID)
		return response, nil
	}

	if domain.IsDateBefore(date, uc.timeProvider.Now().In(uc.location)) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", date.Format(domain.DateFormat))
		return response, nil
	}

	windows, err := uc.availabilityRepo.ListWindows(ctx, req.ServiceID, &day)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability windows: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability windows: %v", ErrInternal, err)
	}

	if len(windows) == 0 {
		return response, nil
	}

	bookings, err := uc.bookingRepo.GetActiveByServiceAndDate(ctx, req.ServiceID, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	response.Slots = freeSlots(windows, bookings)

	uc.logger.Info("GetAvailableSlots: %d free intervals in %d windows, %d active bookings",
		len(response.Slots), len(windows), len(bookings))

	return response, nil
}
