package ports

import (
	"context"

	"github.com/Gunvolt24/order-precheck/internal/domain"
)

// RunArchive — хранилище терминальных отчётов о прогонах.
type RunArchive interface {
	// Save — сохранить отчёт (идемпотентно по RunID).
	Save(ctx context.Context, report *domain.RunReport) error

	// GetByID — вернуть отчёт по идентификатору прогона.
	// Возвращает (nil, nil), если записи нет.
	GetByID(ctx context.Context, runID string) (*domain.RunReport, error)

	// ListByCustomer — отчёты клиента, новые первыми.
	ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*domain.RunReport, error)
}
