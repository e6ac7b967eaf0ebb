package app

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Gunvolt24/order-precheck/internal/domain"
	"github.com/Gunvolt24/order-precheck/internal/ports"
)

// логгер-заглушка
type nopLogger struct{}

func (nopLogger) Debugf(context.Context, string, ...any) {}
func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

func TestAppRun_GracefulShutdown(t *testing.T) {
	// HTTP-сервер на случайном свободном порту
	srv := &http.Server{
		Addr:    "127.0.0.1:0",
		Handler: http.NewServeMux(),
	}

	a := &App{
		Logger:     nopLogger{},
		HTTPServer: srv,
	}

	// Запуск и быстрая остановка
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

func TestAppRun_ListenError(t *testing.T) {
	// заведомо невалидный адрес — ListenAndServe падает сразу
	srv := &http.Server{
		Addr:    "256.256.256.256:0",
		Handler: http.NewServeMux(),
	}

	a := &App{
		Logger:     nopLogger{},
		HTTPServer: srv,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := a.Run(ctx); err == nil {
		t.Fatalf("expected listen error, got nil")
	}
}

// фейковый исполнитель: запоминает опции последнего вызова
type recordingExecutor struct {
	lastStep domain.Step
	lastOpts domain.StepOptions
}

func (r *recordingExecutor) Run(_ context.Context, step domain.Step, _ ports.StepContext, opts domain.StepOptions) domain.StepResult {
	r.lastStep = step
	r.lastOpts = opts
	return domain.StepResult{Passed: true, State: domain.StateAllowed}
}

func (r *recordingExecutor) Dependencies(domain.Step) []domain.Step { return nil }

func TestGeoDefaults_AppliedOnlyToGatherStep(t *testing.T) {
	rec := &recordingExecutor{}
	exec := geoDefaults{
		StepExecutor:  rec,
		gatherTimeout: 4 * time.Second,
		highAccuracy:  true,
	}

	ctx := context.Background()

	// geoLocationGather: бюджет срезается до серверного, точный режим включён
	exec.Run(ctx, domain.StepGeoGather, ports.StepContext{}, domain.StepOptions{Timeout: 15 * time.Second})
	if rec.lastOpts.Timeout != 4*time.Second {
		t.Fatalf("gather timeout: want 4s, got %v", rec.lastOpts.Timeout)
	}
	if !rec.lastOpts.HighAccuracy {
		t.Fatalf("gather high accuracy must be enabled by server default")
	}

	// меньший бюджет вызывающей стороны сохраняется
	exec.Run(ctx, domain.StepGeoGather, ports.StepContext{}, domain.StepOptions{Timeout: time.Second})
	if rec.lastOpts.Timeout != time.Second {
		t.Fatalf("caller timeout must be kept, got %v", rec.lastOpts.Timeout)
	}

	// остальные шаги проходят без изменений
	exec.Run(ctx, domain.StepCustomerExists, ports.StepContext{}, domain.StepOptions{Timeout: 15 * time.Second})
	if rec.lastOpts.Timeout != 15*time.Second || rec.lastOpts.HighAccuracy {
		t.Fatalf("non-gather step options must be untouched: %+v", rec.lastOpts)
	}
}
