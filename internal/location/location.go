// Package location — источники геолокации устройства для шагов проверки.
//
// Пакет разводит два уровня: Source — низкоуровневый колбэчный источник
// позиции (так устроены системные API геолокации), и Device — обёртка,
// переводящая колбэки в синхронный вызов с бюджетом времени и отменой.
package location

import (
	"errors"
	"time"
)

// Типизированные сбои получения позиции.
var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrPositionUnavailable = errors.New("location position unavailable")
	ErrTimeout             = errors.New("location request timed out")
)

// DefaultTimeout — бюджет ожидания позиции по умолчанию.
const DefaultTimeout = 10 * time.Second

// Коды сбоев в отчёте клиента (поле failure).
const (
	FailurePermissionDenied    = "permission_denied"
	FailurePositionUnavailable = "position_unavailable"
	FailureTimeout             = "timeout"
)

// FailureFromCode — типизированная ошибка по коду сбоя из отчёта.
// Неизвестный непустой код трактуется как недоступность позиции.
func FailureFromCode(code string) error {
	switch code {
	case "":
		return nil
	case FailurePermissionDenied:
		return ErrPermissionDenied
	case FailureTimeout:
		return ErrTimeout
	default:
		return ErrPositionUnavailable
	}
}

// CodeFromFailure — обратное соответствие для сериализации отчётов.
func CodeFromFailure(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPermissionDenied):
		return FailurePermissionDenied
	case errors.Is(err, ErrTimeout):
		return FailureTimeout
	default:
		return FailurePositionUnavailable
	}
}
