package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Gunvolt24/order-precheck/internal/domain"
	"github.com/Gunvolt24/order-precheck/internal/ports"
	"github.com/Gunvolt24/order-precheck/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Publisher удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.OutcomePublisher = (*Publisher)(nil)

// writer — минимальный контракт над приёмником (kafka.Writer),
// чтобы легко подменять его моками в тестах.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher — издатель терминальных отчётов в Kafka. Ключ сообщения —
// customer_id: события одного клиента попадают в одну партицию и
// читаются в порядке публикации.
type Publisher struct {
	writer       writer
	topic        string
	log          ports.Logger
	writeTimeout time.Duration
	closeOnce    sync.Once
}

// NewPublisher — конструктор поверх kafka.Writer.
func NewPublisher(cfg *PublisherConfig, log ports.Logger) *Publisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	}
	return newPublisher(w, cfg, log)
}

// newPublisher — внутренний конструктор с подменяемым writer (для тестов).
func newPublisher(w writer, cfg *PublisherConfig, log ports.Logger) *Publisher {
	wt := cfg.WriteTimeout
	if wt <= 0 {
		wt = 5 * time.Second
	}
	return &Publisher{
		writer:       w,
		topic:        cfg.Topic,
		log:          log,
		writeTimeout: wt,
	}
}

// Publish — публикует отчёт одним JSON-сообщением.
func (p *Publisher) Publish(ctx context.Context, report *domain.RunReport) error {
	if report == nil || report.RunID == "" {
		return fmt.Errorf("report is empty or run_id is required")
	}

	value, err := json.Marshal(report)
	if err != nil {
		metrics.EventsFailed.WithLabelValues(p.topic).Inc()
		return fmt.Errorf("marshal report: %w", err)
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, p.writeTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctxTimeout, kafka.Message{
		Key:   []byte(report.CustomerID),
		Value: value,
		Time:  report.FinishedAt,
	}); err != nil {
		metrics.EventsFailed.WithLabelValues(p.topic).Inc()
		return fmt.Errorf("write message: %w", err)
	}

	metrics.EventsPublished.WithLabelValues(p.topic).Inc()
	p.log.Debugf(ctx, "run report published run_id=%s customer_id=%s state=%s",
		report.RunID, report.CustomerID, report.State.ValidationState)
	return nil
}

// Close — закрывает writer. Вызывается при остановке приложения.
func (p *Publisher) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}
