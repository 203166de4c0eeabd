package bookingevents

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
)

// Config параметры подключения к Kafka
type Config struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// Publisher публикует события бронирований в Kafka.
// Ключ сообщения - ID бронирования, поэтому события одного бронирования
// попадают в одну партицию и читаются по порядку.
type Publisher struct {
	writer       MessageWriter
	writeTimeout time.Duration
	metrics      *metrics.Metrics
	log          Logger
}

// NewPublisher создает публикатор поверх kafka.Writer. m может быть nil.
func NewPublisher(cfg Config, m *metrics.Metrics, log Logger) (*Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("%w: at least one broker is required", ErrInvalidConfig)
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("%w: topic cannot be empty", ErrInvalidConfig)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		BatchTimeout: 10 * time.Millisecond,
		ErrorLogger:  kafka.LoggerFunc(log.Error),
	}

	return newPublisher(writer, cfg.WriteTimeout, m, log), nil
}

func newPublisher(writer MessageWriter, writeTimeout time.Duration, m *metrics.Metrics, log Logger) *Publisher {
	return &Publisher{
		writer:       writer,
		writeTimeout: writeTimeout,
		metrics:      m,
		log:          log,
	}
}

// Publish отправляет событие и ждёт подтверждения брокера (не дольше writeTimeout)
func (p *Publisher) Publish(ctx context.Context, event *domain.BookingEvent) error {
	value, err := json.Marshal(fromDomainEvent(event, time.Now().UTC()))
	if err != nil {
		p.observe(event.Type, err)
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.BookingID.String()),
		Value: value,
		Headers: []kafka.Header{
			{Key: HeaderEventType, Value: []byte(event.Type)},
		},
	}

	if p.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.writeTimeout)
		defer cancel()
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.observe(event.Type, err)
		return fmt.Errorf("%w: %s booking=%s: %v", ErrPublish, event.Type, event.BookingID, err)
	}

	p.observe(event.Type, nil)
	p.log.Info("bookingevents: published %s for booking=%s", event.Type, event.BookingID)
	return nil
}

// Close дожидается отправки буферизованных сообщений и закрывает соединения
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func (p *Publisher) observe(eventType domain.BookingEventType, err error) {
	if p.metrics == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	p.metrics.EventsPublished.WithLabelValues(string(eventType), result).Inc()
}

// NopPublisher используется, когда публикация событий выключена
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *domain.BookingEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
