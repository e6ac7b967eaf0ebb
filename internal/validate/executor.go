// Package validate — шаги проверки заказа: шесть валидаторов за закрытым
// перечнем domain.Step, кэширование успешных результатов и статическая
// таблица зависимостей между шагами.
package validate

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/order-precheck/internal/domain"
	"github.com/Gunvolt24/order-precheck/internal/ports"
	"github.com/Gunvolt24/order-precheck/pkg/metrics"
)

// Проверка, что Executor удовлетворяет интерфейсу StepExecutor.
var _ ports.StepExecutor = (*Executor)(nil)

// Executor — исполнитель шагов. Диспетчеризация идёт по закрытому перечню
// шагов (switch), а не по карте имя→функция: неизвестный шаг — это ошибка
// данных, а не паника исполнения.
type Executor struct {
	backend ports.Backend
	cache   ports.StepCache
	log     ports.Logger
}

// New — DI-конструктор.
func New(backend ports.Backend, cache ports.StepCache, log ports.Logger) *Executor {
	return &Executor{
		backend: backend,
		cache:   cache,
		log:     log,
	}
}

// Run — выполнить один шаг. Никогда не паникует: сбой реализации шага
// сворачивается в результат со state=error.
func (e *Executor) Run(ctx context.Context, step domain.Step, sc ports.StepContext, opts domain.StepOptions) (res domain.StepResult) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Errorf(ctx, "step panicked step=%s err=%v", step, r)
			res = errorResult(fmt.Sprintf("unexpected failure in step %s", step))
		}
		metrics.StepRuns.WithLabelValues(string(step), stepOutcome(res)).Inc()
	}()

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	switch step {
	case domain.StepCustomerExists:
		return e.customerExists(ctx, sc, opts)
	case domain.StepCustomerStatus:
		return e.customerStatus(ctx, sc, opts)
	case domain.StepRestaurantStatus:
		return e.restaurantStatus(ctx, sc, opts)
	case domain.StepGeoSupport:
		return e.geoSupport(sc)
	case domain.StepGeoGather:
		return e.geoGather(ctx, sc, opts)
	case domain.StepGeofencingValidate:
		return e.geofencingValidate(ctx, sc, opts)
	default:
		return errorResult(fmt.Sprintf("unknown validation step: %s", step))
	}
}

// cached — прочитать результат шага из кэша (если чтение не отключено).
func (e *Executor) cached(ctx context.Context, key string, opts domain.StepOptions) (domain.StepResult, bool) {
	if opts.SkipCache || key == "" {
		return domain.StepResult{}, false
	}
	return e.cache.Get(ctx, key)
}

// store — положить успешный результат шага в кэш с TTL по умолчанию.
// Сбой кэша не фатален: шаг уже прошёл.
func (e *Executor) store(ctx context.Context, key string, res domain.StepResult) {
	if key == "" || !res.Passed {
		return
	}
	if err := e.cache.Set(ctx, key, res, 0); err != nil {
		e.log.Warnf(ctx, "cache.Set failed key=%s err=%v", key, err)
	}
}

// errorResult — транзиентный сбой: state=error, прогон будет прерван.
func errorResult(msg string) domain.StepResult {
	if msg == "" {
		msg = domain.DefaultMessage(domain.StateError)
	}
	return domain.StepResult{Passed: false, State: domain.StateError, Err: msg}
}

// blockedResult — ожидаемый доменный отказ с собственным состоянием.
func blockedResult(state domain.ValidationState, msg string) domain.StepResult {
	if msg == "" {
		msg = domain.DefaultMessage(state)
	}
	return domain.StepResult{Passed: false, State: state, Err: msg}
}

// passedResult — успешное прохождение шага.
func passedResult(state domain.ValidationState, payload *domain.StepPayload) domain.StepResult {
	return domain.StepResult{Passed: true, State: state, Payload: payload}
}

// stepOutcome — метка результата для метрик.
func stepOutcome(res domain.StepResult) string {
	switch {
	case res.Passed:
		return "passed"
	case res.State == domain.StateError:
		return "error"
	default:
		return "blocked"
	}
}
