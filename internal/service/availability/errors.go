package availability

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = fmt.Errorf("availability: service not found: %w", domain.ErrNotFound)

	// ErrWindowNotFound возвращается, когда окно не найдено у этой услуги
	ErrWindowNotFound = fmt.Errorf("availability: availability window not found: %w", domain.ErrNotFound)

	// ErrNotServiceOwner возвращается, когда actor не провайдер этой услуги
	ErrNotServiceOwner = fmt.Errorf("availability: only the service provider can manage availability: %w", domain.ErrUnauthorized)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("availability: invalid input data: %w", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
