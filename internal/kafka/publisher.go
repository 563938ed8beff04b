// Пакет kafka — публикация событий жизненного цикла заказов во внешнюю
// шину. Ошибка публикации логируется и не прерывает основной поток:
// шина — наблюдатель, а не участник оформления заказа.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/quickcart/quickcart/internal/domain"
	"github.com/quickcart/quickcart/internal/ports"
	"github.com/quickcart/quickcart/pkg/metrics"
)

// Проверка, что Publisher удовлетворяет порту приложения.
var _ ports.OrderEventPublisher = (*Publisher)(nil)

// writer — минимальный контракт над kafka.Writer для подмены в тестах.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PublisherConfig — адреса брокеров и топик событий.
type PublisherConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// Publisher — обёртка над kafka.Writer. Ключ сообщения — order_id:
// события одного заказа попадают в одну партицию и сохраняют порядок.
type Publisher struct {
	writer    writer
	log       ports.Logger
	closeOnce sync.Once
	closeErr  error
}

// NewPublisher — конструктор поверх kafka.Writer.
func NewPublisher(cfg PublisherConfig, log ports.Logger) *Publisher {
	wt := cfg.WriteTimeout
	if wt <= 0 {
		wt = 10 * time.Second
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		WriteTimeout: wt,
		RequiredAcks: kafka.RequireOne,
	}
	return &Publisher{writer: w, log: log}
}

// Publish — сериализует событие и отправляет в топик.
func (p *Publisher) Publish(ctx context.Context, event domain.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s for order %s: %w", event.Type, event.OrderID, err)
	}

	metrics.OrderEventsPublished.WithLabelValues(event.Type).Inc()
	p.log.Debugf(ctx, "event published: type=%s order_id=%s status=%s", event.Type, event.OrderID, event.Status)
	return nil
}

// Close — идемпотентно закрывает writer.
func (p *Publisher) Close() error {
	p.closeOnce.Do(func() {
		p.closeErr = p.writer.Close()
	})
	return p.closeErr
}

// NopPublisher — заглушка для запуска без Kafka (пустой список брокеров).
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, domain.OrderEvent) error { return nil }
func (NopPublisher) Close() error                                     { return nil }
