// Package plan — конфигурация конвейера проверок: упорядоченный список шагов
// с флагом включения и сквозные опции прогона. Пакет разбирает план из
// внешних данных (HTTP-запрос, файл) и проверяет его согласованность.
package plan

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Gunvolt24/order-precheck/internal/domain"
)

// ErrInvalidPlan — базовая (sentinel error) ошибка проверки плана.
var ErrInvalidPlan = errors.New("plan validation failed")

// StepConfig — одна позиция плана: имя шага и флаг включения.
type StepConfig struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// Options — сквозные опции прогона.
type Options struct {
	SkipCache    bool `json:"skipCache,omitempty"`    // не читать кэш ни на одном шаге
	ForceRefresh bool `json:"forceRefresh,omitempty"` // сбросить кэш целиком перед прогоном
	TimeoutMs    int  `json:"timeoutMs,omitempty"`    // бюджет одного шага; 0 — дефолт сервиса
	HighAccuracy bool `json:"highAccuracy,omitempty"` // точная геолокация устройства
}

// Plan — план прогона: порядок объявления шагов и есть порядок исполнения.
type Plan struct {
	Steps   []StepConfig `json:"steps"`
	Options Options      `json:"options,omitempty"`
}

// Default — полный план: все известные шаги включены, в каноническом порядке.
func Default() Plan {
	known := domain.KnownSteps()
	steps := make([]StepConfig, 0, len(known))
	for _, s := range known {
		steps = append(steps, StepConfig{Name: s.String(), Enabled: true})
	}
	return Plan{Steps: steps}
}

// FromSteps — план из перечня шагов вызывающей стороны (все включены).
func FromSteps(steps []domain.Step) Plan {
	out := Plan{Steps: make([]StepConfig, 0, len(steps))}
	for _, s := range steps {
		out.Steps = append(out.Steps, StepConfig{Name: s.String(), Enabled: true})
	}
	return out
}

// StepTimeout — бюджет шага как time.Duration.
func (o Options) StepTimeout() time.Duration {
	if o.TimeoutMs <= 0 {
		return 0
	}
	return time.Duration(o.TimeoutMs) * time.Millisecond
}

// EnabledSteps — включённые шаги плана в порядке объявления.
// Неизвестное имя включённого шага — ошибка конфигурации.
func (p Plan) EnabledSteps() ([]domain.Step, error) {
	out := make([]domain.Step, 0, len(p.Steps))
	for _, sc := range p.Steps {
		if !sc.Enabled {
			continue
		}
		step, err := domain.ParseStep(sc.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
		}
		out = append(out, step)
	}
	return out, nil
}

// Lint — статическая проверка плана:
//   - план не пуст и содержит хотя бы один включённый шаг;
//   - имена шагов известны и не повторяются;
//   - зависимости каждого включённого шага выполнимы объявленным порядком
//     (невыполнимая зависимость в рантайме означает пропуск шага, линт
//     ловит такие планы заранее).
func Lint(p Plan, deps func(domain.Step) []domain.Step) error {
	if len(p.Steps) == 0 {
		return fmt.Errorf("%w: plan has no steps", ErrInvalidPlan)
	}

	seen := make(map[string]struct{}, len(p.Steps))
	enabledBefore := make(map[domain.Step]struct{}, len(p.Steps))
	enabledTotal := 0

	for i, sc := range p.Steps {
		if _, dup := seen[sc.Name]; dup {
			return fmt.Errorf("%w: duplicate step %q at position %d", ErrInvalidPlan, sc.Name, i)
		}
		seen[sc.Name] = struct{}{}

		step, err := domain.ParseStep(sc.Name)
		if err != nil {
			return fmt.Errorf("%w: position %d: %v", ErrInvalidPlan, i, err)
		}
		if !sc.Enabled {
			continue
		}
		enabledTotal++

		if deps != nil {
			for _, dep := range deps(step) {
				if _, ok := enabledBefore[dep]; !ok {
					return fmt.Errorf("%w: step %q requires %q enabled earlier in the plan",
						ErrInvalidPlan, sc.Name, dep)
				}
			}
		}
		enabledBefore[step] = struct{}{}
	}

	if enabledTotal == 0 {
		return fmt.Errorf("%w: no steps enabled", ErrInvalidPlan)
	}
	if p.Options.TimeoutMs < 0 {
		return fmt.Errorf("%w: negative timeoutMs", ErrInvalidPlan)
	}
	return nil
}

// ParsePlan — строгий разбор плана из JSON: неизвестные поля и данные после
// объекта запрещены; затем Lint с таблицей зависимостей deps.
func ParsePlan(raw []byte, deps func(domain.Step) []domain.Step) (Plan, error) {
	var p Plan
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return Plan{}, fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return Plan{}, fmt.Errorf("invalid json: trailing data")
	}
	if err := Lint(p, deps); err != nil {
		return Plan{}, err
	}
	return p, nil
}

// String — краткая форма для логов: включённые шаги через запятую.
func (p Plan) String() string {
	names := make([]string, 0, len(p.Steps))
	for _, sc := range p.Steps {
		if sc.Enabled {
			names = append(names, sc.Name)
		}
	}
	return strings.Join(names, ",")
}
