package validate

import (
	"context"
	"errors"

	"github.com/Gunvolt24/order-precheck/internal/backend"
	"github.com/Gunvolt24/order-precheck/internal/domain"
	"github.com/Gunvolt24/order-precheck/internal/ports"
)

// keyCustomerExists — ключ кэша проверки существования клиента.
func keyCustomerExists(customerID string) string {
	return string(domain.StepCustomerExists) + ":" + customerID
}

// keyCustomerStatus — ключ кэша статуса клиента.
func keyCustomerStatus(customerID string) string {
	return string(domain.StepCustomerStatus) + ":" + customerID
}

// customerExists — клиент существует в системе; карточка клиента уходит
// в данные прогона и в кэш.
func (e *Executor) customerExists(ctx context.Context, sc ports.StepContext, opts domain.StepOptions) domain.StepResult {
	if sc.CustomerID == "" {
		return errorResult("customer id is required")
	}

	key := keyCustomerExists(sc.CustomerID)
	if res, ok := e.cached(ctx, key, opts); ok {
		return res
	}

	cust, err := e.backend.CustomerByID(ctx, sc.CustomerID)
	switch {
	case errors.Is(err, backend.ErrNotFound):
		return blockedResult(domain.StateCustomerNotFound, "")
	case err != nil:
		e.log.Warnf(ctx, "customer lookup failed customer=%s err=%v", sc.CustomerID, err)
		return errorResult(err.Error())
	}

	res := passedResult(domain.StateAllowed, &domain.StepPayload{Customer: cust})
	e.store(ctx, key, res)
	return res
}

// customerStatus — клиенту разрешено оформлять заказы. Полезных данных
// шаг не производит, кэшируется только сам вердикт.
func (e *Executor) customerStatus(ctx context.Context, sc ports.StepContext, opts domain.StepOptions) domain.StepResult {
	if sc.CustomerID == "" {
		return errorResult("customer id is required")
	}

	key := keyCustomerStatus(sc.CustomerID)
	if res, ok := e.cached(ctx, key, opts); ok {
		return res
	}

	can, err := e.backend.CustomerCanOrder(ctx, sc.CustomerID)
	if err != nil {
		e.log.Warnf(ctx, "customer status failed customer=%s err=%v", sc.CustomerID, err)
		return errorResult(err.Error())
	}
	if !can {
		return blockedResult(domain.StateCustomerDisabled, "")
	}

	res := passedResult(domain.StateAllowed, nil)
	e.store(ctx, key, res)
	return res
}
