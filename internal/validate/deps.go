package validate

import "github.com/Gunvolt24/order-precheck/internal/domain"

// stepDeps — статическая таблица зависимостей: шаг может стартовать, только
// если перечисленные шаги уже пройдены в этом же прогоне. Невыполненная
// зависимость означает пропуск шага, а не отказ — так вызывающая сторона
// может запросить поднабор проверок без гео-части.
var stepDeps = map[domain.Step][]domain.Step{
	domain.StepCustomerStatus:     {domain.StepCustomerExists},
	domain.StepGeoGather:          {domain.StepGeoSupport},
	domain.StepGeofencingValidate: {domain.StepGeoGather},
}

// Dependencies — зависимости шага из статической таблицы.
func Dependencies(step domain.Step) []domain.Step {
	return append([]domain.Step(nil), stepDeps[step]...)
}

// Dependencies — реализация ports.StepExecutor.
func (e *Executor) Dependencies(step domain.Step) []domain.Step {
	return Dependencies(step)
}
