package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Gunvolt24/order-precheck/internal/domain"
	"github.com/Gunvolt24/order-precheck/internal/ports"
	"github.com/Gunvolt24/order-precheck/internal/routing"
	"github.com/Gunvolt24/order-precheck/pkg/ctxmeta"
	"github.com/Gunvolt24/order-precheck/pkg/metrics"
	"github.com/Gunvolt24/order-precheck/pkg/plan"
)

// PrecheckService — прикладная логика прогона проверок (без знаний о
// транспорте): собирает план, гоняет конвейер, решает навигацию,
// архивирует отчёт и публикует событие об итоге.
type PrecheckService struct {
	exec        ports.StepExecutor     // исполнитель шагов
	cache       ports.StepCache        // кэш результатов шагов (для ForceRefresh)
	archive     ports.RunArchive       // архив отчётов; nil — без архива
	publisher   ports.OutcomePublisher // издатель событий; nil — без публикации
	log         ports.Logger
	stepTimeout time.Duration // бюджет одного шага по умолчанию
}

// NewPrecheckService — DI-конструктор. archive и publisher опциональны (nil).
func NewPrecheckService(
	exec ports.StepExecutor,
	cache ports.StepCache,
	archive ports.RunArchive,
	publisher ports.OutcomePublisher,
	log ports.Logger,
	stepTimeout time.Duration,
) *PrecheckService {
	return &PrecheckService{
		exec:        exec,
		cache:       cache,
		archive:     archive,
		publisher:   publisher,
		log:         log,
		stepTimeout: stepTimeout,
	}
}

var _ ports.PrecheckService = (*PrecheckService)(nil)

// Validate — выполнить прогон до терминального состояния.
// Сбои архива и издателя не валят уже завершившийся прогон: отчёт и
// навигация возвращаются вызывающему, проблема уходит в лог.
func (s *PrecheckService) Validate(ctx context.Context, in ports.ValidateInput) (*domain.RunReport, domain.Navigation, error) {
	runID := uuid.NewString()
	ctx = ctxmeta.WithRunID(ctx, runID)

	p := s.buildPlan(in)

	if in.ForceRefresh {
		if err := s.cache.Clear(ctx); err != nil {
			s.log.Warnf(ctx, "cache.Clear failed run_id=%s err=%v", runID, err)
		}
	}

	started := time.Now()
	runner := NewRunner(s.exec, s.log)
	state, err := runner.Run(ctx, RunInput{
		CustomerID:   in.CustomerID,
		ActiveOrders: in.ActiveOrders,
		Locator:      in.Locator,
		Plan:         p,
	})
	if err != nil {
		// прогон брошен по отмене контекста — терминального исхода нет
		return nil, domain.Navigation{}, err
	}
	finished := time.Now()

	steps, stepsErr := p.EnabledSteps()
	if stepsErr != nil {
		steps = nil // неизвестный шаг уже свалил прогон в failed/error
	}
	report := &domain.RunReport{
		RunID:      runID,
		CustomerID: in.CustomerID,
		Steps:      steps,
		State:      state,
		StartedAt:  started,
		FinishedAt: finished,
	}

	metrics.Runs.WithLabelValues(state.ValidationState.String()).Inc()
	metrics.RunDuration.Observe(finished.Sub(started).Seconds())

	nav := routing.Navigate(report, in.Extras)

	if s.archive != nil {
		if err := s.archive.Save(ctx, report); err != nil {
			s.log.Warnf(ctx, "archive.Save failed run_id=%s err=%v", runID, err)
		}
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, report); err != nil {
			s.log.Warnf(ctx, "publisher.Publish failed run_id=%s err=%v", runID, err)
		}
	}

	s.log.Infof(ctx, "validation run finished run_id=%s customer_id=%s state=%s took=%s",
		runID, in.CustomerID, state.ValidationState, report.Duration())
	return report, nav, nil
}

// buildPlan — план прогона из входа: явный перечень шагов вызывающего либо
// план по умолчанию; сквозные опции переносятся как есть.
func (s *PrecheckService) buildPlan(in ports.ValidateInput) plan.Plan {
	var p plan.Plan
	if in.Steps == nil {
		p = plan.Default()
	} else {
		p = plan.FromSteps(in.Steps)
	}
	p.Options.SkipCache = in.SkipCache
	p.Options.ForceRefresh = in.ForceRefresh
	p.Options.HighAccuracy = in.HighAccuracy
	if s.stepTimeout > 0 {
		p.Options.TimeoutMs = int(s.stepTimeout / time.Millisecond)
	}
	return p
}

// RunByID — отчёт из архива; (nil, nil), если записи нет.
func (s *PrecheckService) RunByID(ctx context.Context, runID string) (*domain.RunReport, error) {
	if s.archive == nil {
		return nil, nil
	}
	return s.archive.GetByID(ctx, runID)
}

// RunsByCustomer — проксирование в архив (пагинация уже валидирована на верхнем уровне).
func (s *PrecheckService) RunsByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*domain.RunReport, error) {
	if s.archive == nil {
		return nil, nil
	}
	return s.archive.ListByCustomer(ctx, customerID, limit, offset)
}
