package domain

import "time"

// Phase — фаза машины состояний конвейера.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseValidating Phase = "validating"
	PhaseSuccess    Phase = "success"
	PhaseFailed     Phase = "failed"
)

// IsTerminal — success/failed; из терминальной фазы возможен Reset или Retry.
func (p Phase) IsTerminal() bool { return p == PhaseSuccess || p == PhaseFailed }

// String — для логов.
func (p Phase) String() string { return string(p) }

// StepResult — атомарный результат одного вызова валидатора.
// Инвариант: Passed == true ⇔ State успешен (IsSuccessLike).
type StepResult struct {
	Passed  bool
	State   ValidationState
	Payload *StepPayload
	Err     string
}

// StepOptions — сквозные опции запуска для конкретного шага.
type StepOptions struct {
	SkipCache    bool          // не читать кэш (запись остаётся)
	Timeout      time.Duration // бюджет на один шаг (0 — дефолт исполнителя)
	HighAccuracy bool          // точная геолокация устройства
}

// PipelineState — наблюдаемое извне состояние машины конвейера.
//
// Инварианты:
//   - CompletedSteps — в точности префикс включённых шагов, вернувших
//     Passed=true, в порядке исполнения;
//   - Data содержит не более одной записи на имя из CompletedSteps
//     (меньше — если шаг прошёл без полезных данных).
type PipelineState struct {
	Phase           Phase           `json:"phase"`
	CurrentStep     Step            `json:"currentStep,omitempty"`
	FailedStep      Step            `json:"failedStep,omitempty"`
	CompletedSteps  []Step          `json:"completedSteps"`
	ValidationState ValidationState `json:"validationState,omitempty"`
	Err             string          `json:"error,omitempty"`
	Data            RunData         `json:"data,omitempty"`
}

// Clone — снимок состояния для выдачи наружу.
func (s PipelineState) Clone() PipelineState {
	out := s
	out.CompletedSteps = append([]Step(nil), s.CompletedSteps...)
	out.Data = s.Data.Clone()
	return out
}

// RunReport — терминальный отчёт одного прогона: состояние плюс метаданные
// запуска. Его сохраняет архив и публикует издатель событий.
type RunReport struct {
	RunID      string        `json:"runId"`
	CustomerID string        `json:"customerId"`
	Steps      []Step        `json:"steps"` // включённые шаги прогона в порядке исполнения
	State      PipelineState `json:"state"`
	StartedAt  time.Time     `json:"startedAt"`
	FinishedAt time.Time     `json:"finishedAt"`
}

// Duration — длительность прогона.
func (r RunReport) Duration() time.Duration { return r.FinishedAt.Sub(r.StartedAt) }

// Route — назначение для слоя навигации: терминальный исход → путь.
type Route struct {
	Redirect bool   `json:"redirect"`
	Path     string `json:"path,omitempty"`
}

// Navigation — решение слоя навигации: маршрут и контекст для целевой страницы.
type Navigation struct {
	Route   Route          `json:"route"`
	Payload map[string]any `json:"payload,omitempty"`
}
