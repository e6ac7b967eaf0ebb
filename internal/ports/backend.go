package ports

import (
	"context"

	"github.com/Gunvolt24/order-precheck/internal/domain"
)

// Backend — клиент HTTP API ресторана.
// Все методы возвращают распакованные данные конверта {success, data|error};
// неуспешный конверт и сетевые сбои приходят как ошибка.
type Backend interface {
	// CustomerByID — карточка клиента. Отсутствие клиента — backend.ErrNotFound.
	CustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// CustomerCanOrder — может ли клиент оформлять заказы.
	CustomerCanOrder(ctx context.Context, customerID string) (bool, error)

	// RestaurantStatus — часы работы и незавершённые заказы ресторана.
	RestaurantStatus(ctx context.Context) (*domain.RestaurantStatus, error)

	// ValidateDeliveryZone — проверка точки на принадлежность зоне доставки.
	ValidateDeliveryZone(ctx context.Context, coords domain.Coordinates) (*domain.ZoneDecision, error)
}
