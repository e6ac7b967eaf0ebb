// Package routing — отображение терминального исхода прогона в назначение
// для слоя навигации. Чистые функции без I/O: слой навигации сам решает,
// как доставить пользователя по пути и что показать на целевой странице.
package routing

import (
	"github.com/Gunvolt24/order-precheck/internal/domain"
)

// Пути назначений по блокирующим исходам.
const (
	// PathCustomerNotFound — единственный путь без идентификатора клиента:
	// сам идентификатор не подтверждён, параметризовать нечем.
	PathCustomerNotFound = "/validation/customer-not-found"

	pathCustomerDisabled   = "/customer-disabled"
	pathRestaurantClosed   = "/restaurant-closed"
	pathNoGeolocation      = "/no-geolocation"
	pathLocationPermission = "/location-permission"
	pathOutsideCity        = "/outside-city"
	pathOutsideZone        = "/outside-zone"
	pathError              = "/validation-error"
)

// Resolve — назначение для исхода state. Успешные и промежуточные исходы
// (allowed, restaurant_closed_active_orders, idle, loading) редиректа не дают.
func Resolve(state domain.ValidationState, customerID string) domain.Route {
	if !state.IsBlocking() {
		return domain.Route{Redirect: false}
	}

	switch state {
	case domain.StateCustomerNotFound:
		return domain.Route{Redirect: true, Path: PathCustomerNotFound}
	case domain.StateCustomerDisabled:
		return customerRoute(customerID, pathCustomerDisabled)
	case domain.StateRestaurantClosed:
		return customerRoute(customerID, pathRestaurantClosed)
	case domain.StateNoGeolocationSupport:
		return customerRoute(customerID, pathNoGeolocation)
	case domain.StateNoLocationPermission:
		return customerRoute(customerID, pathLocationPermission)
	case domain.StateOutsideCity:
		return customerRoute(customerID, pathOutsideCity)
	case domain.StateOutsideZone:
		return customerRoute(customerID, pathOutsideZone)
	default:
		// error и любые будущие блокирующие исходы — общий экран повтора
		return customerRoute(customerID, pathError)
	}
}

// customerRoute — путь, параметризованный идентификатором клиента.
func customerRoute(customerID, suffix string) domain.Route {
	return domain.Route{Redirect: true, Path: "/validation/" + customerID + suffix}
}

// NavigationPayload — контекст для целевой страницы: исход, сообщение,
// упавший шаг, пройденные шаги, накопленные данные и дополнения вызывающей
// стороны. Целевая страница рендерит объяснение без повторных запросов.
func NavigationPayload(report *domain.RunReport, extras map[string]any) map[string]any {
	if report == nil {
		return nil
	}
	st := report.State

	payload := map[string]any{
		"validationState": st.ValidationState,
		"error":           st.Err,
		"failedStep":      st.FailedStep,
		"completedSteps":  append([]domain.Step(nil), st.CompletedSteps...),
	}
	for step, data := range st.Data {
		payload[step.String()] = data.Clone()
	}
	// дополнения вызывающей стороны не затирают поля исхода
	for k, v := range extras {
		if _, taken := payload[k]; !taken {
			payload[k] = v
		}
	}
	return payload
}

// Navigate — маршрут и контекст одним решением.
func Navigate(report *domain.RunReport, extras map[string]any) domain.Navigation {
	if report == nil {
		return domain.Navigation{}
	}
	return domain.Navigation{
		Route:   Resolve(report.State.ValidationState, report.CustomerID),
		Payload: NavigationPayload(report, extras),
	}
}
