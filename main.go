package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Zhima-Mochi/beverage-machine/internal/application/machine"
	"github.com/Zhima-Mochi/beverage-machine/internal/application/restock"
	"github.com/Zhima-Mochi/beverage-machine/internal/config"
	"github.com/Zhima-Mochi/beverage-machine/internal/infrastructure/drinkmaker"
	httptransport "github.com/Zhima-Mochi/beverage-machine/internal/infrastructure/http"
	inventoryworker "github.com/Zhima-Mochi/beverage-machine/internal/infrastructure/inventory/worker"
	"github.com/Zhima-Mochi/beverage-machine/internal/infrastructure/memory"
	"github.com/Zhima-Mochi/beverage-machine/internal/infrastructure/notifier"
	infraobs "github.com/Zhima-Mochi/beverage-machine/internal/infrastructure/observability"
	"github.com/Zhima-Mochi/beverage-machine/internal/infrastructure/observability/oteltrace"
	"github.com/Zhima-Mochi/beverage-machine/internal/infrastructure/observability/prometrics"
	"github.com/Zhima-Mochi/beverage-machine/internal/infrastructure/observability/zaplogger"
	"github.com/Zhima-Mochi/beverage-machine/internal/infrastructure/outbox"
	"github.com/Zhima-Mochi/beverage-machine/internal/infrastructure/report"
	"github.com/Zhima-Mochi/beverage-machine/internal/observability"
	"github.com/Zhima-Mochi/beverage-machine/internal/pkg/logging"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(2)
	}

	baseLogger := logging.MustNewLogger(logging.Options{
		Service: cfg.ServiceName,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
	})
	defer func() { _ = baseLogger.Sync() }()
	zap.ReplaceGlobals(baseLogger)

	systemLogger := logging.WithTrace(baseLogger, logging.SystemTraceID, logging.SystemSpanID)

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	counters, histograms := infraobs.Instruments(prometrics.New(cfg.MetricsNamespace, "", nil))
	tel := infraobs.New(
		oteltrace.New(cfg.ServiceName),
		zaplogger.New(baseLogger),
		counters,
		histograms,
	)
	logger := tel.Logger()

	// In-memory event bus carrying shortage and restock events to the workers.
	bus := outbox.NewBus(logger)

	stock := memory.NewInventoryRepository(cfg.InitialStock)
	maker := drinkmaker.NewLogMaker(logger)

	restockUseCase := restock.New(stock, cfg.RestockQuantity, bus, tel)
	inventoryworker.New(bus, restockUseCase, logger).Start()

	vendingMachine, err := machine.NewBuilder().
		WithBeverageServer(drinkmaker.NewBeverageServer(maker, stock, logger)).
		WithStockChecker(stock).
		WithDisplay(drinkmaker.NewDisplay(maker)).
		WithReportsPrinter(reportsPrinter(cfg, tel)).
		WithNotifier(notifier.NewBusNotifier(bus, tel)).
		WithObservability(tel).
		Build()
	if err != nil {
		systemLogger.Fatal("machine_build_error", zap.Error(err))
	}

	handler := httptransport.NewHandler(vendingMachine, stock, tel)
	router := handler.Router()
	router.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              cfg.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus.Start(ctx)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		systemLogger.Info("http_server_start",
			zap.String("addr", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		bus.Stop(shutdownCtx)
		systemLogger.Info("http_server_stopped")
		return nil
	})

	if err := g.Wait(); err != nil {
		systemLogger.Error("http_server_error",
			zap.Error(err),
		)
	}
}

func reportsPrinter(cfg *config.Config, tel observability.Observability) machine.ReportsPrinter {
	printers := report.MultiPrinter{
		report.NewLogPrinter(tel.Logger()),
		report.NewWriterPrinter(os.Stdout, tel.Logger()),
	}
	if cfg.ReportWebhookURL != "" {
		printers = append(printers, report.NewWebhookPrinter(cfg.ReportWebhookURL, tel))
	}
	return printers
}
