package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Gunvolt24/order-precheck/internal/domain"
	"github.com/Gunvolt24/order-precheck/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что RunArchive удовлетворяет интерфейсу RunArchive.
var _ ports.RunArchive = (*RunArchive)(nil)

// RunArchive — архив терминальных отчётов о прогонах на Postgres (pgxpool).
// Списки шагов и накопленные данные лежат в jsonb: архив — журнал для
// поддержки и аналитики, по внутренностям отчёта реляционных запросов нет.
type RunArchive struct {
	pool *pgxpool.Pool
}

// NewRunArchive — конструктор RunArchive.
func NewRunArchive(pool *pgxpool.Pool) *RunArchive { return &RunArchive{pool: pool} }

// Save — сохраняет отчёт. Идемпотентно по run_id: повторная запись того же
// прогона молча пропускается (ON CONFLICT DO NOTHING).
func (r *RunArchive) Save(ctx context.Context, report *domain.RunReport) error {
	if report == nil || report.RunID == "" {
		return errors.New("report is empty or run_id is required")
	}
	if report.CustomerID == "" {
		return errors.New("customer_id is required")
	}

	steps := report.Steps
	if steps == nil {
		steps = []domain.Step{}
	}
	completed := report.State.CompletedSteps
	if completed == nil {
		completed = []domain.Step{}
	}
	data := report.State.Data
	if data == nil {
		data = domain.RunData{}
	}

	stepsJSON, err := json.Marshal(steps)
	if err != nil {
		return fmt.Errorf("marshal steps: %w", err)
	}
	completedJSON, err := json.Marshal(completed)
	if err != nil {
		return fmt.Errorf("marshal completed steps: %w", err)
	}
	dataJSON, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal run data: %w", err)
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO validation_runs (
			run_id, customer_id, phase, validation_state, failed_step, error,
			steps, completed_steps, data, started_at, finished_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (run_id) DO NOTHING
	`,
		report.RunID, report.CustomerID, report.State.Phase.String(), report.State.ValidationState.String(),
		string(report.State.FailedStep), report.State.Err,
		stepsJSON, completedJSON, dataJSON, report.StartedAt, report.FinishedAt,
	); err != nil {
		return fmt.Errorf("insert validation run: %w", err)
	}
	return nil
}

// GetByID — получить отчёт по run_id. Если не нашли, возвращает (nil, nil).
func (r *RunArchive) GetByID(ctx context.Context, runID string) (*domain.RunReport, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT run_id, customer_id, phase, validation_state, failed_step, error,
			steps, completed_steps, data, started_at, finished_at
		FROM validation_runs WHERE run_id = $1
	`, runID)

	report, err := scanRunReport(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select validation run: %w", err)
	}
	return report, nil
}

// ListByCustomer — постраничный список отчётов клиента, новые первыми.
func (r *RunArchive) ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*domain.RunReport, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, `
		SELECT run_id, customer_id, phase, validation_state, failed_step, error,
			steps, completed_steps, data, started_at, finished_at
		FROM validation_runs
		WHERE customer_id = $1
		ORDER BY finished_at DESC, run_id DESC
		LIMIT $2 OFFSET $3
	`, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select customer runs: %w", err)
	}
	defer rows.Close()

	reports := make([]*domain.RunReport, 0, limit)
	for rows.Next() {
		report, err := scanRunReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan validation run: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("runs rows: %w", err)
	}
	return reports, nil
}

// scanRunReport — сборка отчёта из строки результата (общий набор колонок
// для GetByID и ListByCustomer).
func scanRunReport(row pgx.Row) (*domain.RunReport, error) {
	var (
		report        domain.RunReport
		phase         string
		state         string
		failedStep    string
		stepsJSON     []byte
		completedJSON []byte
		dataJSON      []byte
	)

	if err := row.Scan(
		&report.RunID, &report.CustomerID, &phase, &state, &failedStep, &report.State.Err,
		&stepsJSON, &completedJSON, &dataJSON, &report.StartedAt, &report.FinishedAt,
	); err != nil {
		return nil, err
	}

	report.State.Phase = domain.Phase(phase)
	report.State.ValidationState = domain.ValidationState(state)
	report.State.FailedStep = domain.Step(failedStep)

	if err := json.Unmarshal(stepsJSON, &report.Steps); err != nil {
		return nil, fmt.Errorf("unmarshal steps: %w", err)
	}
	if err := json.Unmarshal(completedJSON, &report.State.CompletedSteps); err != nil {
		return nil, fmt.Errorf("unmarshal completed steps: %w", err)
	}
	if err := json.Unmarshal(dataJSON, &report.State.Data); err != nil {
		return nil, fmt.Errorf("unmarshal run data: %w", err)
	}
	return &report, nil
}
