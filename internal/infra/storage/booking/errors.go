package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken возвращается, когда exclusion constraint отклонил пересекающееся бронирование
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	// ErrStaleStatus возвращается, когда статус бронирования изменился с момента чтения
	ErrStaleStatus = errors.New("booking.repository: booking status changed concurrently")

	// ErrNoTransaction возвращается, когда операция требует транзакции в контексте
	ErrNoTransaction = errors.New("booking.repository: operation requires a transaction")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
