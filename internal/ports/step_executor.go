package ports

import (
	"context"

	"github.com/Gunvolt24/order-precheck/internal/domain"
)

// StepContext — то, что видит шаг: целевой клиент, незавершённые заказы
// от вызывающей стороны, данные предыдущих шагов и источник геолокации
// этого прогона.
type StepContext struct {
	CustomerID   string
	ActiveOrders []domain.ActiveOrder
	Data         domain.RunData
	Locator      Locator
}

// StepExecutor — исполнитель одного шага валидации.
// Реализация никогда не паникует и не возвращает ошибку наружу: любой сбой
// (сеть, неуспешный конверт, некорректный ответ) сворачивается в
// StepResult{Passed: false, State: error}.
type StepExecutor interface {
	// Run — выполнить шаг с контекстом прогона и сквозными опциями.
	Run(ctx context.Context, step domain.Step, sc StepContext, opts domain.StepOptions) domain.StepResult

	// Dependencies — шаги, которые обязаны присутствовать в completedSteps
	// прогона до запуска step. Пустой срез — зависимостей нет.
	Dependencies(step domain.Step) []domain.Step
}
