package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"

	"github.com/Gunvolt24/order-precheck/config"
	"github.com/Gunvolt24/order-precheck/internal/backend"
	cachemem "github.com/Gunvolt24/order-precheck/internal/cache/memory"
	"github.com/Gunvolt24/order-precheck/internal/domain"
	"github.com/Gunvolt24/order-precheck/internal/kafka"
	"github.com/Gunvolt24/order-precheck/internal/ports"
	"github.com/Gunvolt24/order-precheck/internal/repo/postgres"
	rest "github.com/Gunvolt24/order-precheck/internal/transport/http"
	"github.com/Gunvolt24/order-precheck/internal/usecase"
	"github.com/Gunvolt24/order-precheck/internal/validate"
	"github.com/Gunvolt24/order-precheck/pkg/logger"
	"github.com/Gunvolt24/order-precheck/pkg/metrics"
	"github.com/Gunvolt24/order-precheck/pkg/telemetry"
)

// App — собранное приложение и его внешние интерфейсы.
type App struct {
	Logger          ports.Logger  // логгер
	HTTPServer      *http.Server  // HTTP-сервер
	gracefulTimeout time.Duration // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// geoDefaults — исполнитель шагов с серверными умолчаниями для шага
// geoLocationGather: бюджет сбора позиции и точный режим из конфигурации,
// когда вызывающая сторона их не задала.
type geoDefaults struct {
	ports.StepExecutor
	gatherTimeout time.Duration
	highAccuracy  bool
}

func (g geoDefaults) Run(ctx context.Context, step domain.Step, sc ports.StepContext, opts domain.StepOptions) domain.StepResult {
	if step == domain.StepGeoGather {
		if g.gatherTimeout > 0 && (opts.Timeout <= 0 || opts.Timeout > g.gatherTimeout) {
			opts.Timeout = g.gatherTimeout
		}
		opts.HighAccuracy = opts.HighAccuracy || g.highAccuracy
	}
	return g.StepExecutor.Run(ctx, step, sc, opts)
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Пул подключений Postgres (архив прогонов).
	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Клиент бэкенда ресторана; исходящие запросы трассируются через otelhttp.
	backendHTTP := &http.Client{
		Timeout:   cfg.Backend.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	backendClient := backend.New(cfg.Backend.BaseURL, backendHTTP)

	// Сборка зависимостей доменного слоя.
	stepCache := cachemem.NewStepCacheTTL(cfg.Cache.Capacity, cfg.Cache.TTL)
	var exec ports.StepExecutor = validate.New(backendClient, stepCache, logg)
	exec = geoDefaults{
		StepExecutor:  exec,
		gatherTimeout: cfg.Geo.GatherTimeout,
		highAccuracy:  cfg.Geo.HighAccuracy,
	}
	archive := postgres.NewRunArchive(pool)

	// Издатель итогов прогонов (опционально).
	var publisher ports.OutcomePublisher
	closePublisher := func() error { return nil }
	if cfg.Kafka.Enabled {
		kp := kafka.NewPublisher(&kafka.PublisherConfig{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			WriteTimeout: cfg.Kafka.WriteTimeout,
		}, logg)
		publisher = kp
		closePublisher = kp.Close
		logg.Infof(ctx, "kafka publisher enabled topic=%s brokers=%v", cfg.Kafka.Topic, cfg.Kafka.Brokers)
	}

	service := usecase.NewPrecheckService(exec, stepCache, archive, publisher, logg, cfg.Pipeline.StepTimeout)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(service, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if perr := closePublisher(); perr != nil {
			logg.Warnf(ctx, "kafka publisher close error: %v", perr)
		}

		pool.Close()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер; ждёт отмены контекста или ошибки сервера и
// останавливает его корректно.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")

		gt := a.gracefulTimeout
		if gt <= 0 {
			gt = 5 * time.Second
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
		defer cancel()

		if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
			return err
		}
		a.Logger.Infof(ctx, "http server stopped gracefully")
		return nil
	})

	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		a.Logger.Warnf(ctx, "background error: %v", err)
		a.Logger.Infof(ctx, "service stopped")
		return err
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
