package ports

import (
	"context"

	"github.com/Gunvolt24/order-precheck/internal/domain"
)

// ValidateInput — параметры одного прогона проверок.
type ValidateInput struct {
	CustomerID   string               // целевой клиент (обязателен)
	ActiveOrders []domain.ActiveOrder // незавершённые заказы со стороны вызывающего
	Locator      Locator              // источник геолокации запроса
	Steps        []domain.Step        // nil — план по умолчанию
	Extras       map[string]any       // дополнительный контекст для навигации
	SkipCache    bool                 // не читать кэш ни на одном шаге
	ForceRefresh bool                 // сбросить кэш целиком перед прогоном
	HighAccuracy bool                 // точная геолокация устройства
}

// PrecheckService — сервис прогона проверок и чтения архива.
type PrecheckService interface {
	// Validate — выполнить прогон до терминального состояния,
	// заархивировать отчёт и вернуть его вместе с решением по навигации.
	Validate(ctx context.Context, in ValidateInput) (*domain.RunReport, domain.Navigation, error)

	// RunByID — отчёт по идентификатору прогона; (nil, nil), если записи нет.
	RunByID(ctx context.Context, runID string) (*domain.RunReport, error)

	// RunsByCustomer — отчёты клиента, новые первыми.
	RunsByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*domain.RunReport, error)
}
