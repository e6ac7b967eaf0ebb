package location

import (
	"github.com/Gunvolt24/order-precheck/internal/domain"
	"github.com/Gunvolt24/order-precheck/internal/ports"
)

// reportSource — источник позиции из снимка, переданного клиентом:
// ответ уже известен и доставляется колбэком немедленно.
type reportSource struct {
	rep *domain.LocationReport
}

func (s reportSource) Supported() bool {
	return s.rep != nil && s.rep.Supported
}

func (s reportSource) Request(_ ports.LocateOptions, ok func(domain.Coordinates), fail func(error)) {
	switch {
	case s.rep == nil || !s.rep.Supported:
		fail(ErrPositionUnavailable)
	case s.rep.Failure != "":
		fail(FailureFromCode(s.rep.Failure))
	case s.rep.Coordinates != nil:
		ok(*s.rep.Coordinates)
	default:
		// поддержка заявлена, но ни координат, ни кода сбоя нет
		fail(ErrPositionUnavailable)
	}
}

// FromReport — Locator на основе снимка из запроса.
// nil-отчёт трактуется как отсутствие поддержки геолокации.
func FromReport(rep *domain.LocationReport) ports.Locator {
	return NewDevice(reportSource{rep: rep}, 0)
}

// Fixed — Locator с заранее известной позицией (тесты, CLI-прогоны).
func Fixed(coords domain.Coordinates) ports.Locator {
	return FromReport(&domain.LocationReport{
		Supported:   true,
		Coordinates: &coords,
	})
}
