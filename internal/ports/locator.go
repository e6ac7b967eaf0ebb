package ports

import (
	"context"
	"time"

	"github.com/Gunvolt24/order-precheck/internal/domain"
)

// LocateOptions — опции запроса текущей позиции устройства.
type LocateOptions struct {
	HighAccuracy bool          // запрашивать точную позицию (дороже по времени/батарее)
	Timeout      time.Duration // бюджет ожидания; 0 — дефолт реализации (10s)
	MaximumAge   time.Duration // допустимый возраст закэшированной позиции устройства
}

// Locator — источник геолокации устройства для одного запроса.
// Current возвращает координаты либо одну из типизированных ошибок пакета
// location: ErrPermissionDenied, ErrPositionUnavailable, ErrTimeout.
type Locator interface {
	// Supported — поддерживает ли устройство геолокацию вообще.
	// Чистая проверка возможности, без I/O.
	Supported() bool

	// Current — получить текущую позицию с учётом опций.
	Current(ctx context.Context, opts LocateOptions) (domain.Coordinates, error)
}
