package bookingevents

import "errors"

var (
	// ErrEncode возвращается, если событие не удалось сериализовать
	ErrEncode = errors.New("bookingevents: failed to encode event")

	// ErrPublish возвращается, если брокер не принял сообщение
	ErrPublish = errors.New("bookingevents: failed to publish event")

	// ErrInvalidConfig возвращается при некорректной конфигурации публикатора
	ErrInvalidConfig = errors.New("bookingevents: invalid config")
)
