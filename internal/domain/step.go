package domain

import "fmt"

// Step — идентификатор шага конвейера. Закрытый набор: диспетчеризация идёт
// через switch по константам, а не через map имя→функция, чтобы опечатка в
// имени шага ловилась на этапе компиляции, а не в рантайме.
type Step string

const (
	StepCustomerExists     Step = "customerExists"
	StepCustomerStatus     Step = "customerStatus"
	StepRestaurantStatus   Step = "restaurantStatus"
	StepGeoSupport         Step = "geoLocationSupport"
	StepGeoGather          Step = "geoLocationGather"
	StepGeofencingValidate Step = "geofencingValidate"
)

// KnownSteps — канонический порядок всех шагов (он же порядок плана по
// умолчанию: от дешёвых проверок к дорогим).
func KnownSteps() []Step {
	return []Step{
		StepCustomerExists,
		StepCustomerStatus,
		StepRestaurantStatus,
		StepGeoSupport,
		StepGeoGather,
		StepGeofencingValidate,
	}
}

// ParseStep — разбор имени шага из внешних данных (план, HTTP-запрос).
func ParseStep(name string) (Step, error) {
	s := Step(name)
	if !s.Valid() {
		return "", fmt.Errorf("unknown validation step: %q", name)
	}
	return s, nil
}

// Valid — true для известного шага.
func (s Step) Valid() bool {
	switch s {
	case StepCustomerExists, StepCustomerStatus, StepRestaurantStatus,
		StepGeoSupport, StepGeoGather, StepGeofencingValidate:
		return true
	}
	return false
}

// String — для логов и ключей кэша.
func (s Step) String() string { return string(s) }
