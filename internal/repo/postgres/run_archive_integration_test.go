//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/order-precheck/internal/domain"
	pgrepo "github.com/Gunvolt24/order-precheck/internal/repo/postgres"
	"github.com/Gunvolt24/order-precheck/internal/testutil"
)

// 1) Сохранение и получение отчёта
func TestArchive_SaveAndGet_TC(t *testing.T) {
	t.Parallel()

	// длинный контекст — только на подъём контейнера
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()

	// миграции
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	// короткий контекст — на сами БД-операции
	ctxTest, cancelTest := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelTest()

	pool, err := pgxpool.New(ctxTest, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	archive := pgrepo.NewRunArchive(pool)

	report := testutil.MakeRunReport()
	require.NoError(t, archive.Save(ctxTest, &report))

	got, err := archive.GetByID(ctxTest, report.RunID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, report.RunID, got.RunID)
	require.Equal(t, report.CustomerID, got.CustomerID)
	require.Equal(t, domain.PhaseSuccess, got.State.Phase)
	require.Equal(t, domain.StateAllowed, got.State.ValidationState)
	require.Equal(t, report.State.CompletedSteps, got.State.CompletedSteps)
	require.NotNil(t, got.State.Data[domain.StepGeoGather].Coordinates)
	require.Equal(t, 55.7512, got.State.Data[domain.StepGeoGather].Coordinates.Latitude)
}

// 2) Повторный Save того же run_id — no-op, первая запись остаётся
func TestArchive_Save_IdempotentByRunID_TC(t *testing.T) {
	t.Parallel()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	archive := pgrepo.NewRunArchive(pool)

	report := testutil.MakeRunReport()
	require.NoError(t, archive.Save(ctx, &report))

	// вторая запись с тем же run_id, но другим исходом
	dup := report
	dup.State.ValidationState = domain.StateError
	require.NoError(t, archive.Save(ctx, &dup))

	got, err := archive.GetByID(ctx, report.RunID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, domain.StateAllowed, got.State.ValidationState)
}

// 3) Неуспешный прогон: исход, упавший шаг и сообщение переживают round-trip
func TestArchive_FailedRunRoundTrip_TC(t *testing.T) {
	t.Parallel()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	archive := pgrepo.NewRunArchive(pool)

	report := testutil.MakeRunReport(
		testutil.WithFailedOutcome(domain.StepGeofencingValidate, domain.StateOutsideZone),
	)
	require.NoError(t, archive.Save(ctx, &report))

	got, err := archive.GetByID(ctx, report.RunID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, domain.PhaseFailed, got.State.Phase)
	require.Equal(t, domain.StateOutsideZone, got.State.ValidationState)
	require.Equal(t, domain.StepGeofencingValidate, got.State.FailedStep)
	require.Equal(t, domain.DefaultMessage(domain.StateOutsideZone), got.State.Err)
	require.NotContains(t, got.State.CompletedSteps, domain.StepGeofencingValidate)
}

// 4) GetByID — (nil, nil) для неизвестного run_id
func TestArchive_GetByID_NotFound_TC(t *testing.T) {
	t.Parallel()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	archive := pgrepo.NewRunArchive(pool)

	got, err := archive.GetByID(ctx, "run-does-not-exist")
	require.NoError(t, err)
	require.Nil(t, got)
}

// 5) ListByCustomer — пагинация и сортировка по finished_at DESC
func TestArchive_ListByCustomer_PaginationAndOrder_TC(t *testing.T) {
	t.Parallel()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	archive := pgrepo.NewRunArchive(pool)

	const cust = "cust-list"
	base := time.Now().UTC().Add(-time.Hour)

	// 5 прогонов одного клиента с контролируемыми датами + 1 другого клиента
	var runIDs []string
	for i := 0; i < 5; i++ {
		r := testutil.MakeRunReport(
			testutil.WithRunCustomer(cust),
			testutil.WithFinishedAt(base.Add(time.Duration(i)*time.Minute)),
		)
		require.NoError(t, archive.Save(ctx, &r))
		runIDs = append(runIDs, r.RunID)
	}
	other := testutil.MakeRunReport(testutil.WithRunCustomer("cust-other"))
	require.NoError(t, archive.Save(ctx, &other))

	// Страница 1: limit=2 offset=0 → 2 самых свежих прогона клиента
	page1, err := archive.ListByCustomer(ctx, cust, 2, 0)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	require.Equal(t, runIDs[4], page1[0].RunID)
	require.Equal(t, runIDs[3], page1[1].RunID)

	// Страница 2: limit=2 offset=2 → ещё 2
	page2, err := archive.ListByCustomer(ctx, cust, 2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	require.True(t, !page2[0].FinishedAt.Before(page2[1].FinishedAt))

	// Страница 3: limit=2 offset=4 → только 1 оставшийся
	page3, err := archive.ListByCustomer(ctx, cust, 2, 4)
	require.NoError(t, err)
	require.Len(t, page3, 1)

	// Прогонов другого клиента ни на одной странице нет
	for _, page := range [][]*domain.RunReport{page1, page2, page3} {
		for _, r := range page {
			require.Equal(t, cust, r.CustomerID)
		}
	}
}

// 6) Save — ошибки валидации входа (nil / пустые обязательные поля)
func TestArchive_Save_ValidationErrors_TC(t *testing.T) {
	t.Parallel()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	archive := pgrepo.NewRunArchive(pool)

	// nil
	require.Error(t, archive.Save(ctx, nil))

	// пустой run_id
	r1 := testutil.MakeRunReport(testutil.WithRunID(""))
	require.Error(t, archive.Save(ctx, &r1))

	// пустой customer_id
	r2 := testutil.MakeRunReport(testutil.WithRunCustomer(""))
	require.Error(t, archive.Save(ctx, &r2))
}
