package validate

import (
	"context"

	"github.com/Gunvolt24/order-precheck/internal/domain"
	"github.com/Gunvolt24/order-precheck/internal/ports"
)

// keyRestaurantStatus — общий (синглтонный) ключ статуса ресторана.
const keyRestaurantStatus = string(domain.StepRestaurantStatus)

// restaurantStatus — ресторан принимает заказы. Кэшируются только данные
// статуса: вердикт зависит от заказов вызывающей стороны и выводится
// заново на каждом прогоне, включая попадание в кэш.
func (e *Executor) restaurantStatus(ctx context.Context, sc ports.StepContext, opts domain.StepOptions) domain.StepResult {
	var st *domain.RestaurantStatus

	if res, ok := e.cached(ctx, keyRestaurantStatus, opts); ok {
		if res.Payload != nil && res.Payload.Restaurant != nil {
			st = res.Payload.Restaurant
		}
	}

	if st == nil {
		fetched, err := e.backend.RestaurantStatus(ctx)
		if err != nil {
			e.log.Warnf(ctx, "restaurant status failed err=%v", err)
			return errorResult(err.Error())
		}
		st = fetched
		e.store(ctx, keyRestaurantStatus, passedResult(domain.StateAllowed, &domain.StepPayload{Restaurant: st}))
	}

	return decideRestaurant(st, sc.ActiveOrders)
}

// decideRestaurant — вердикт по статусу ресторана. Закрытый ресторан при
// непустом списке незавершённых заказов не блокирует прогон: клиенту надо
// добраться до своих заказов.
func decideRestaurant(st *domain.RestaurantStatus, active []domain.ActiveOrder) domain.StepResult {
	payload := &domain.StepPayload{Restaurant: st}

	if st.IsOpen {
		return passedResult(domain.StateAllowed, payload)
	}
	if len(active) > 0 {
		return passedResult(domain.StateRestaurantClosedActiveOrders, payload)
	}
	return blockedResult(domain.StateRestaurantClosed, st.Message)
}
