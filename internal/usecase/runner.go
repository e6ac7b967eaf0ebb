package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/Gunvolt24/order-precheck/internal/domain"
	"github.com/Gunvolt24/order-precheck/internal/ports"
	"github.com/Gunvolt24/order-precheck/pkg/plan"
)

// RunInput — параметры одного прогона конвейера.
type RunInput struct {
	CustomerID   string
	ActiveOrders []domain.ActiveOrder
	Locator      ports.Locator
	Plan         plan.Plan
}

// Runner — машина состояний конвейера проверок: idle → validating →
// {success|failed}. Шаги выполняются строго последовательно, в порядке
// объявления плана; параллельного исполнения нет.
//
// Потокобезопасен. Одновременно активен не более одного прогона: Run/Retry
// при phase == validating игнорируются и возвращают снимок текущего
// состояния. Устаревший прогон (обогнанный Reset или новым прогоном)
// определяется по счётчику поколений, его терминальная запись отбрасывается.
type Runner struct {
	exec ports.StepExecutor
	log  ports.Logger

	mu         sync.Mutex
	gen        uint64
	state      domain.PipelineState
	lastIn     RunInput
	lastFailed domain.Step
	hasLast    bool
}

// NewRunner — DI-конструктор.
func NewRunner(exec ports.StepExecutor, log ports.Logger) *Runner {
	return &Runner{
		exec:  exec,
		log:   log,
		state: domain.PipelineState{Phase: domain.PhaseIdle, ValidationState: domain.StateIdle},
	}
}

// State — снимок текущего состояния машины.
func (r *Runner) State() domain.PipelineState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Clone()
}

// Reset — вернуть машину в idle из любой фазы. Активный прогон (если есть)
// устаревает и свою терминальную запись не делает.
func (r *Runner) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	r.state = domain.PipelineState{Phase: domain.PhaseIdle, ValidationState: domain.StateIdle}
}

// Run — выполнить прогон по плану до терминального состояния и вернуть его.
// Вызов при phase == validating игнорируется: возвращается снимок текущего
// (ещё идущего) прогона. Отмена контекста бросает прогон без терминального
// перехода; возвращается состояние на момент отмены и ctx.Err().
func (r *Runner) Run(ctx context.Context, in RunInput) (domain.PipelineState, error) {
	return r.run(ctx, in, "")
}

// Retry — повторить последний прогон с теми же параметрами. Кэш обходится
// только для шага, на котором прогон упал: пройденные ранее шаги остаются
// закэшированными. Вызов при phase == validating или без предыдущего
// прогона возвращает снимок текущего состояния.
func (r *Runner) Retry(ctx context.Context) (domain.PipelineState, error) {
	r.mu.Lock()
	if r.state.Phase == domain.PhaseValidating || !r.hasLast {
		snapshot := r.state.Clone()
		r.mu.Unlock()
		return snapshot, nil
	}
	in := r.lastIn
	failed := r.lastFailed
	r.mu.Unlock()

	return r.run(ctx, in, failed)
}

// run — общий путь Run/Retry; skipCacheStep — шаг, для которого кэш
// обходится принудительно ("" — ни для какого).
func (r *Runner) run(ctx context.Context, in RunInput, skipCacheStep domain.Step) (domain.PipelineState, error) {
	r.mu.Lock()
	if r.state.Phase == domain.PhaseValidating {
		snapshot := r.state.Clone()
		r.mu.Unlock()
		r.log.Warnf(ctx, "run ignored: validation already in progress customer_id=%s", in.CustomerID)
		return snapshot, nil
	}

	r.gen++
	myGen := r.gen
	r.lastIn = in
	r.lastFailed = ""
	r.hasLast = true

	// Ошибки конфигурации валят прогон сразу, без единого I/O.
	if strings.TrimSpace(in.CustomerID) == "" {
		return r.failLocked(ctx, myGen, "", domain.StateError, "customer id is required")
	}
	enabled, err := in.Plan.EnabledSteps()
	if err != nil {
		return r.failLocked(ctx, myGen, "", domain.StateError, err.Error())
	}
	if len(enabled) == 0 {
		return r.failLocked(ctx, myGen, "", domain.StateError, "validation plan has no enabled steps")
	}

	r.state = domain.PipelineState{
		Phase:           domain.PhaseValidating,
		ValidationState: domain.StateLoading,
		CompletedSteps:  []domain.Step{},
	}
	r.mu.Unlock()

	r.log.Infof(ctx, "validation started customer_id=%s steps=%s", in.CustomerID, in.Plan)

	sc := ports.StepContext{
		CustomerID:   in.CustomerID,
		ActiveOrders: in.ActiveOrders,
		Data:         domain.RunData{},
		Locator:      in.Locator,
	}
	completed := make(map[domain.Step]struct{}, len(enabled))
	completedList := make([]domain.Step, 0, len(enabled))

	for _, step := range enabled {
		if skipped, dep := unmetDependency(r.exec.Dependencies(step), completed); skipped {
			r.log.Debugf(ctx, "step skipped: dependency not completed step=%s missing=%s", step, dep)
			continue
		}

		if !r.setCurrent(myGen, step) {
			// прогон обогнали Reset или новый запуск — тихо уходим
			r.log.Debugf(ctx, "run superseded, abandoning customer_id=%s step=%s", in.CustomerID, step)
			return r.State(), nil
		}

		opts := domain.StepOptions{
			SkipCache:    in.Plan.Options.SkipCache || (skipCacheStep != "" && step == skipCacheStep),
			Timeout:      in.Plan.Options.StepTimeout(),
			HighAccuracy: in.Plan.Options.HighAccuracy,
		}
		res := r.runStep(ctx, step, sc, opts)

		if ctx.Err() != nil {
			r.abandon(myGen)
			r.log.Warnf(ctx, "validation abandoned customer_id=%s step=%s err=%v", in.CustomerID, step, ctx.Err())
			return r.State(), ctx.Err()
		}

		if !res.Passed {
			msg := res.Err
			if msg == "" {
				msg = domain.DefaultMessage(res.State)
			}
			r.log.Infof(ctx, "validation failed customer_id=%s step=%s state=%s", in.CustomerID, step, res.State)
			return r.finishLocked(ctx, myGen, domain.PipelineState{
				Phase:           domain.PhaseFailed,
				FailedStep:      step,
				CompletedSteps:  completedList,
				ValidationState: res.State,
				Err:             msg,
				Data:            sc.Data,
			}, step)
		}

		if res.Payload != nil && !res.Payload.Empty() {
			sc.Data[step] = res.Payload.Clone()
		}
		completed[step] = struct{}{}
		completedList = append(completedList, step)
		r.log.Debugf(ctx, "step passed customer_id=%s step=%s state=%s", in.CustomerID, step, res.State)
	}

	r.log.Infof(ctx, "validation succeeded customer_id=%s steps_completed=%d", in.CustomerID, len(completedList))
	return r.finishLocked(ctx, myGen, domain.PipelineState{
		Phase:           domain.PhaseSuccess,
		CompletedSteps:  completedList,
		ValidationState: domain.StateAllowed,
		Data:            sc.Data,
	}, "")
}

// runStep — вызов исполнителя со страховочным recover. Исполнитель по
// контракту не паникует; страховка покрывает сторонние реализации порта.
func (r *Runner) runStep(ctx context.Context, step domain.Step, sc ports.StepContext, opts domain.StepOptions) (res domain.StepResult) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Errorf(ctx, "validator panic recovered step=%s panic=%v", step, rec)
			res = domain.StepResult{
				Passed: false,
				State:  domain.StateError,
				Err:    domain.DefaultMessage(domain.StateError),
			}
		}
	}()
	return r.exec.Run(ctx, step, sc, opts)
}

// setCurrent — отметить текущий шаг; false, если прогон устарел.
func (r *Runner) setCurrent(myGen uint64, step domain.Step) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gen != myGen {
		return false
	}
	r.state.CurrentStep = step
	return true
}

// abandon — снять отметку текущего шага без терминального перехода.
func (r *Runner) abandon(myGen uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gen == myGen {
		r.state.CurrentStep = ""
	}
}

// finishLocked — терминальная запись с проверкой поколения: устаревший прогон
// общее состояние не трогает, но свой результат вызывающему возвращает.
func (r *Runner) finishLocked(_ context.Context, myGen uint64, terminal domain.PipelineState, failed domain.Step) (domain.PipelineState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gen == myGen {
		r.state = terminal
		r.lastFailed = failed
	}
	return terminal.Clone(), nil
}

// failLocked — немедленный терминальный отказ из-под уже взятого замка
// (ошибки конфигурации до первого шага).
func (r *Runner) failLocked(ctx context.Context, myGen uint64, step domain.Step, state domain.ValidationState, msg string) (domain.PipelineState, error) {
	terminal := domain.PipelineState{
		Phase:           domain.PhaseFailed,
		FailedStep:      step,
		CompletedSteps:  []domain.Step{},
		ValidationState: state,
		Err:             msg,
	}
	if r.gen == myGen {
		r.state = terminal
		r.lastFailed = step
	}
	r.mu.Unlock()
	r.log.Warnf(ctx, "validation rejected before start: %s", msg)
	return terminal.Clone(), nil
}

// unmetDependency — первая невыполненная зависимость шага.
func unmetDependency(deps []domain.Step, completed map[domain.Step]struct{}) (bool, domain.Step) {
	for _, dep := range deps {
		if _, ok := completed[dep]; !ok {
			return true, dep
		}
	}
	return false, ""
}
