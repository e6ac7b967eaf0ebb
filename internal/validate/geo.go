package validate

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Gunvolt24/order-precheck/internal/domain"
	"github.com/Gunvolt24/order-precheck/internal/location"
	"github.com/Gunvolt24/order-precheck/internal/ports"
)

// Коды причин отказа геозоны от бэкенда.
const (
	reasonCityNotFound = "CITY_NOT_FOUND"
	reasonOutsideCity  = "OUTSIDE_CITY"
)

// geoSupport — устройство поддерживает геолокацию. Чистая проверка
// возможности: без I/O, без кэша, без полезных данных.
func (e *Executor) geoSupport(sc ports.StepContext) domain.StepResult {
	if sc.Locator == nil || !sc.Locator.Supported() {
		return blockedResult(domain.StateNoGeolocationSupport, "")
	}
	return passedResult(domain.StateAllowed, nil)
}

// geoGather — текущая позиция устройства. Не кэшируется: координаты слишком
// волатильны. Все три сбоя устройства сводятся к одному блокирующему
// состоянию с разными сообщениями.
func (e *Executor) geoGather(ctx context.Context, sc ports.StepContext, opts domain.StepOptions) domain.StepResult {
	if sc.Locator == nil {
		return blockedResult(domain.StateNoGeolocationSupport, "")
	}

	coords, err := sc.Locator.Current(ctx, ports.LocateOptions{
		HighAccuracy: opts.HighAccuracy,
		Timeout:      opts.Timeout,
	})
	switch {
	case errors.Is(err, location.ErrPermissionDenied):
		return blockedResult(domain.StateNoLocationPermission, "location access denied, allow location access to continue")
	case errors.Is(err, location.ErrTimeout):
		return blockedResult(domain.StateNoLocationPermission, "location request timed out, please try again")
	case errors.Is(err, location.ErrPositionUnavailable):
		return blockedResult(domain.StateNoLocationPermission, "current position is unavailable")
	case err != nil:
		return errorResult(err.Error())
	}

	return passedResult(domain.StateAllowed, &domain.StepPayload{Coordinates: &coords})
}

// geofencingValidate — точка внутри зоны доставки. Координаты берутся из
// данных шага geoLocationGather; вердикт кэшируется по округлённой позиции.
func (e *Executor) geofencingValidate(ctx context.Context, sc ports.StepContext, opts domain.StepOptions) domain.StepResult {
	coords := coordsFrom(sc.Data)
	if coords == nil {
		return errorResult("coordinates are not available")
	}

	key := keyGeofencing(*coords)
	if res, ok := e.cached(ctx, key, opts); ok {
		return res
	}

	zone, err := e.backend.ValidateDeliveryZone(ctx, *coords)
	if err != nil {
		e.log.Warnf(ctx, "delivery zone check failed err=%v", err)
		return errorResult(err.Error())
	}

	if !zone.Within {
		state := domain.StateOutsideZone
		if zone.Reason == reasonCityNotFound || zone.Reason == reasonOutsideCity {
			state = domain.StateOutsideCity
		}
		return blockedResult(state, zone.Message)
	}

	res := passedResult(domain.StateAllowed, &domain.StepPayload{Zone: zone})
	e.store(ctx, key, res)
	return res
}

// coordsFrom — координаты из данных шага geoLocationGather.
func coordsFrom(data domain.RunData) *domain.Coordinates {
	if p, ok := data[domain.StepGeoGather]; ok && p.Coordinates != nil {
		c := *p.Coordinates
		return &c
	}
	return nil
}

// roundCoord — округление координаты до 4 знаков (~11 м по широте);
// половина округляется от нуля, чтобы ключи кэша были детерминированы.
func roundCoord(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

// keyGeofencing — ключ кэша геозоны по округлённой позиции.
func keyGeofencing(c domain.Coordinates) string {
	return fmt.Sprintf("%s:%.4f,%.4f", domain.StepGeofencingValidate, roundCoord(c.Latitude), roundCoord(c.Longitude))
}
