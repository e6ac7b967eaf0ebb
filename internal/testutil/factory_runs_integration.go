//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/order-precheck/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор валидного терминального отчёта (успешный прогон полного плана).
func MakeRunReport(opts ...func(*domain.RunReport)) domain.RunReport {
	runID := "run-" + UniqSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond) // точность timestamptz

	steps := domain.KnownSteps()
	r := domain.RunReport{
		RunID:      runID,
		CustomerID: "cust-" + UniqSuffix(),
		Steps:      steps,
		State: domain.PipelineState{
			Phase:           domain.PhaseSuccess,
			CompletedSteps:  append([]domain.Step(nil), steps...),
			ValidationState: domain.StateAllowed,
			Data: domain.RunData{
				domain.StepCustomerExists: {Customer: &domain.Customer{ID: "cust", Name: "John Smith"}},
				domain.StepGeoGather:      {Coordinates: &domain.Coordinates{Latitude: 55.7512, Longitude: 37.6184}},
			},
		},
		StartedAt:  now.Add(-2 * time.Second),
		FinishedAt: now,
	}

	for _, fn := range opts {
		fn(&r)
	}
	return r
}

func WithRunCustomer(cust string) func(*domain.RunReport) {
	return func(r *domain.RunReport) { r.CustomerID = cust }
}

func WithRunID(runID string) func(*domain.RunReport) {
	return func(r *domain.RunReport) { r.RunID = runID }
}

// WithFailedOutcome — отчёт о прогоне, упавшем на step с исходом state.
func WithFailedOutcome(step domain.Step, state domain.ValidationState) func(*domain.RunReport) {
	return func(r *domain.RunReport) {
		r.State.Phase = domain.PhaseFailed
		r.State.FailedStep = step
		r.State.ValidationState = state
		r.State.Err = domain.DefaultMessage(state)

		completed := make([]domain.Step, 0, len(r.Steps))
		for _, s := range r.Steps {
			if s == step {
				break
			}
			completed = append(completed, s)
		}
		r.State.CompletedSteps = completed

		// данные — не более одной записи на пройденный шаг
		kept := make(domain.RunData, len(completed))
		for _, s := range completed {
			if payload, ok := r.State.Data[s]; ok {
				kept[s] = payload
			}
		}
		r.State.Data = kept
	}
}

// WithFinishedAt — контролируемое время завершения (для проверок сортировки).
func WithFinishedAt(ts time.Time) func(*domain.RunReport) {
	return func(r *domain.RunReport) {
		r.FinishedAt = ts
		r.StartedAt = ts.Add(-2 * time.Second)
	}
}
