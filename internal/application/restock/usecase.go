package restock

import (
	"context"
	"fmt"
	"time"

	"github.com/Zhima-Mochi/beverage-machine/internal/application"
	"github.com/Zhima-Mochi/beverage-machine/internal/domain/beverage"
	dominv "github.com/Zhima-Mochi/beverage-machine/internal/domain/inventory"
	domoutbox "github.com/Zhima-Mochi/beverage-machine/internal/domain/outbox"
	"github.com/Zhima-Mochi/beverage-machine/internal/observability"
	"github.com/Zhima-Mochi/beverage-machine/internal/observability/logctx"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	restockService   = "restock-service"
	useCaseRestock   = "inventory.restock"
	spanPrefix       = "UC."
	publishPeer      = "outbox"
	endpointRestock  = "inventory.beverage_restocked"
	publishTimeout   = 300 * time.Millisecond
	outcomeRequested = "requested"
)

// Restocker adds units of a beverage and reports what is left afterwards.
type Restocker interface {
	Restock(ctx context.Context, b beverage.Beverage, quantity int) (int, error)
}

// Result tells whether the shortage was refilled automatically.
type Result struct {
	Beverage  beverage.Beverage
	Restocked bool
	Quantity  int
	Remaining int
}

var _ application.UseCase[dominv.BeverageShortageEvent, *Result] = (*UseCase)(nil)

// UseCase reacts to a shortage. With a zero quantity it only records the restock request for
// the operator; otherwise it refills the stock and announces it.
type UseCase struct {
	stock     Restocker
	quantity  int
	publisher domoutbox.Publisher

	log          observability.Logger
	tracer       observability.Tracer
	reqCounter   observability.Counter
	durHistogram observability.Histogram
	extCounter   observability.Counter
	extHistogram observability.Histogram
}

func New(stock Restocker, quantity int, publisher domoutbox.Publisher, tel observability.Observability) *UseCase {
	baseLog := observability.NopLogger()
	tracer := observability.NopTracer()
	metricsProvider := observability.NopMetrics()
	if tel != nil {
		baseLog = tel.Logger()
		tracer = tel.Tracer()
		metricsProvider = tel.Metrics()
	}
	if quantity < 0 {
		quantity = 0
	}

	return &UseCase{
		stock:        stock,
		quantity:     quantity,
		publisher:    publisher,
		log:          baseLog.With(observability.F("service", restockService)),
		tracer:       tracer,
		reqCounter:   metricsProvider.Counter(observability.MUsecaseRequests),
		durHistogram: metricsProvider.Histogram(observability.MUsecaseDuration),
		extCounter:   metricsProvider.Counter(observability.MExternalRequests),
		extHistogram: metricsProvider.Histogram(observability.MExternalRequestDuration),
	}
}

func (uc *UseCase) Execute(ctx context.Context, e dominv.BeverageShortageEvent) (_ *Result, err error) {
	logger := logctx.FromOr(ctx, uc.log).With(
		observability.F("use_case", useCaseRestock),
		observability.F("beverage", e.Beverage.ID()),
	)

	ctx, span := uc.tracer.Start(ctx, spanPrefix+"Restock",
		attribute.String("use_case", useCaseRestock),
		attribute.String("beverage.id", e.Beverage.ID()),
		attribute.Int("restock.quantity", uc.quantity),
	)
	start := time.Now()
	outcome, statusText := "success", "OK"
	result := &Result{Beverage: e.Beverage}
	var publishErr error

	defer func() {
		if span != nil {
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, statusText)
			} else {
				span.SetStatus(codes.Ok, statusText)
			}
			span.End()
		}

		latency := time.Since(start).Seconds()
		uc.reqCounter.Add(1,
			observability.L("use_case", useCaseRestock),
			observability.L("outcome", outcome),
		)
		uc.durHistogram.Observe(latency,
			observability.L("use_case", useCaseRestock),
		)

		fields := []observability.Field{
			observability.F("outcome", outcome),
			observability.F("status", statusText),
			observability.F("latency_seconds", latency),
			observability.F("restocked", result.Restocked),
			observability.F("remaining", result.Remaining),
		}
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			fields = append(fields,
				observability.F("trace_id", sc.TraceID().String()),
				observability.F("span_id", sc.SpanID().String()),
			)
		}
		if publishErr != nil {
			fields = append(fields, observability.F("restocked_event_error", publishErr.Error()))
		}
		if err != nil {
			fields = append(fields, observability.F("error", err.Error()))
		}
		logger.Info("use_case_done", fields...)
	}()

	if uc.quantity == 0 || uc.stock == nil {
		outcome, statusText = outcomeRequested, "RESTOCK_REQUESTED"
		logger.Warn("restock_requested", observability.F("occurred_at", e.OccurredAt))
		return result, nil
	}

	remaining, err := uc.stock.Restock(ctx, e.Beverage, uc.quantity)
	if err != nil {
		outcome, statusText = "error", "RESTOCK_FAILED"
		return result, fmt.Errorf("restock: %s: %w", e.Beverage.ID(), err)
	}
	result.Restocked = true
	result.Quantity = uc.quantity
	result.Remaining = remaining

	publishErr = uc.publish(ctx, dominv.NewBeverageRestockedEvent(e.Beverage, uc.quantity, remaining))
	if publishErr != nil {
		outcome, statusText = "error", "EVENT_PUBLISH_FAILED"
		return result, fmt.Errorf("restock: publish restocked: %w", publishErr)
	}
	return result, nil
}

func (uc *UseCase) publish(ctx context.Context, event domoutbox.Event) error {
	if uc.publisher == nil {
		return nil
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	start := time.Now()
	err := uc.publisher.Publish(pubCtx, event)
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	cancel()

	uc.extCounter.Add(1,
		observability.L("peer", publishPeer),
		observability.L("endpoint", endpointRestock),
		observability.L("outcome", outcome),
	)
	uc.extHistogram.Observe(time.Since(start).Seconds(),
		observability.L("peer", publishPeer),
		observability.L("endpoint", endpointRestock),
	)
	return err
}
