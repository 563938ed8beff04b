package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quickcart/quickcart/config"
	"github.com/quickcart/quickcart/internal/automation"
	"github.com/quickcart/quickcart/internal/browser"
	"github.com/quickcart/quickcart/internal/compare"
	"github.com/quickcart/quickcart/internal/kafka"
	ledgermem "github.com/quickcart/quickcart/internal/ledger/memory"
	"github.com/quickcart/quickcart/internal/ports"
	"github.com/quickcart/quickcart/internal/recommend"
	"github.com/quickcart/quickcart/internal/registry"
	"github.com/quickcart/quickcart/internal/scrape"
	rest "github.com/quickcart/quickcart/internal/transport/http"
	"github.com/quickcart/quickcart/internal/usecase"
	"github.com/quickcart/quickcart/pkg/logger"
	"github.com/quickcart/quickcart/pkg/metrics"
	"github.com/quickcart/quickcart/pkg/telemetry"
)

// App — собранное приложение и его внешние интерфейсы.
type App struct {
	Logger          ports.Logger
	HTTPServer      *http.Server
	gracefulTimeout time.Duration
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

// Bootstrap — собирает зависимости и возвращает приложение, функцию
// очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

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

	// Реестр платформ — закрытый набор, валидируется на старте.
	reg := registry.MustDefault()

	// Браузерная автоматизация и двухъярусный поиск.
	chrome := browser.NewChrome(browser.Config{
		Headless:    cfg.Browser.Headless,
		NoSandbox:   cfg.Browser.NoSandbox,
		RemoteURL:   cfg.Browser.RemoteURL,
		WaitTimeout: cfg.Scrape.WaitTimeout,
	}, logg)
	fetcher := scrape.NewHTTPFetcher(cfg.Scrape.FetchTimeout)
	gateway := scrape.NewGateway(chrome, fetcher, reg, logg, cfg.Scrape.MaxResults, cfg.Scrape.WaitTimeout)

	// Сравнение, рекомендация, оформление, журнал.
	aggregator := compare.NewAggregator(gateway, reg, logg, cfg.Compare.PerPlatform)
	builder := recommend.NewBuilder(reg)
	driver := automation.NewDriver(chrome, reg, logg, cfg.Automation.StepTimeout)
	ledger := ledgermem.NewOrderLedger(cfg.Ledger.Capacity)

	// Публикация событий заказов; без брокеров — заглушка.
	var publisher ports.OrderEventPublisher = kafka.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = kafka.NewPublisher(kafka.PublisherConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		}, logg)
		logg.Infof(ctx, "kafka publisher enabled brokers=%v topic=%s", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	service := usecase.NewQuickOrderService(
		aggregator, builder, driver, ledger, publisher, logg,
		cfg.Compare.Deadline, cfg.Approval.ThresholdMinor, len(reg.Platforms()),
	)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin.
	otelServiceName := cfg.Tracing.ServiceName
	if otelServiceName == "" {
		otelServiceName = "quickcart"
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(service, logg)
	router := rest.NewRouter(httpHandler, otelServiceName, "./web")

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
		if perr := publisher.Close(); perr != nil {
			logg.Warnf(ctx, "kafka publisher close error: %v", perr)
		}
		if berr := chrome.Close(); berr != nil {
			logg.Warnf(ctx, "browser close error: %v", berr)
		}
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер; ждёт отмены контекста или ошибки сервера
// и останавливает его корректно.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		a.Logger.Warnf(ctx, "http server error: %v", err)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
