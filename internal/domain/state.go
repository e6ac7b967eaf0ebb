package domain

// ValidationState — закрытое перечисление исходов проверки.
// Ровно одно значение описывает текущий исход конвейера в любой момент.
type ValidationState string

const (
	StateIdle                         ValidationState = "idle"
	StateLoading                      ValidationState = "loading"
	StateAllowed                      ValidationState = "allowed"
	StateCustomerNotFound             ValidationState = "customer_not_found"
	StateCustomerDisabled             ValidationState = "customer_disabled"
	StateRestaurantClosed             ValidationState = "restaurant_closed"
	StateRestaurantClosedActiveOrders ValidationState = "restaurant_closed_active_orders"
	StateNoGeolocationSupport         ValidationState = "no_geolocation_support"
	StateNoLocationPermission         ValidationState = "no_location_permission"
	StateOutsideCity                  ValidationState = "outside_city"
	StateOutsideZone                  ValidationState = "outside_zone"
	StateError                        ValidationState = "error"
)

// IsSuccessLike — исходы, которые НЕ блокируют продвижение конвейера.
// Таких ровно два: allowed и restaurant_closed_active_orders.
func (s ValidationState) IsSuccessLike() bool {
	return s == StateAllowed || s == StateRestaurantClosedActiveOrders
}

// IsBlocking — терминальные отказы; idle/loading — промежуточные, не отказ.
func (s ValidationState) IsBlocking() bool {
	switch s {
	case StateIdle, StateLoading:
		return false
	default:
		return !s.IsSuccessLike()
	}
}

// String — для логов.
func (s ValidationState) String() string { return string(s) }

// DefaultMessage — сообщение по умолчанию, если валидатор не дал своего.
// Уходит наружу (navigation payload), поэтому текст — английский, как и
// остальные строки HTTP-слоя.
func DefaultMessage(s ValidationState) string {
	switch s {
	case StateCustomerNotFound:
		return "customer not found"
	case StateCustomerDisabled:
		return "customer account is disabled"
	case StateRestaurantClosed:
		return "restaurant is closed"
	case StateNoGeolocationSupport:
		return "geolocation is not supported on this device"
	case StateNoLocationPermission:
		return "location permission was not granted"
	case StateOutsideCity:
		return "delivery is not available in this city"
	case StateOutsideZone:
		return "address is outside the delivery zone"
	case StateError:
		return "validation failed, please try again"
	default:
		return ""
	}
}
