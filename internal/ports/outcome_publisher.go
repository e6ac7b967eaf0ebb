package ports

import (
	"context"

	"github.com/Gunvolt24/order-precheck/internal/domain"
)

// OutcomePublisher — издатель событий об итогах прогонов (например, в Kafka).
type OutcomePublisher interface {
	// Publish — опубликовать терминальный отчёт прогона.
	Publish(ctx context.Context, report *domain.RunReport) error

	// Close — освободить ресурсы издателя.
	Close() error
}
