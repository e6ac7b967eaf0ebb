package location

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/order-precheck/internal/domain"
	"github.com/Gunvolt24/order-precheck/internal/ports"
)

var _ ports.Locator = (*Device)(nil)

// Source — колбэчный источник позиции. Реализация вызывает ровно один из
// колбэков; Device терпит и нарушение этого контракта (учитывается только
// первый ответ).
type Source interface {
	// Supported — поддерживает ли источник геолокацию.
	Supported() bool

	// Request — запросить позицию; результат придёт в ok либо fail.
	Request(opts ports.LocateOptions, ok func(domain.Coordinates), fail func(error))
}

// Device — Locator поверх колбэчного источника: ожидание первого ответа,
// бюджет времени и отмена контекста.
type Device struct {
	src     Source
	timeout time.Duration
}

// NewDevice — конструктор; timeout <= 0 — DefaultTimeout.
func NewDevice(src Source, timeout time.Duration) *Device {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Device{src: src, timeout: timeout}
}

// Supported — проксирование в источник.
func (d *Device) Supported() bool { return d.src.Supported() }

// Current — получить позицию. Превышение бюджета — ErrTimeout; отмена
// контекста обрывает ожидание, не дожидаясь колбэка источника.
func (d *Device) Current(ctx context.Context, opts ports.LocateOptions) (domain.Coordinates, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = d.timeout
	}

	type outcome struct {
		coords domain.Coordinates
		err    error
	}

	ch := make(chan outcome, 1)
	var once sync.Once
	deliver := func(o outcome) {
		once.Do(func() { ch <- o })
	}

	d.src.Request(opts,
		func(c domain.Coordinates) { deliver(outcome{coords: c}) },
		func(err error) { deliver(outcome{err: err}) },
	)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case o := <-ch:
		return o.coords, o.err
	case <-timer.C:
		return domain.Coordinates{}, ErrTimeout
	case <-ctx.Done():
		return domain.Coordinates{}, ctx.Err()
	}
}
