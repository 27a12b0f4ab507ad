package machine

import (
	"context"
	"errors"
	"time"

	"github.com/Zhima-Mochi/beverage-machine/internal/application/cashier"
	"github.com/Zhima-Mochi/beverage-machine/internal/application/dispenser"
	"github.com/Zhima-Mochi/beverage-machine/internal/domain/beverage"
	"github.com/Zhima-Mochi/beverage-machine/internal/domain/inventory"
	"github.com/Zhima-Mochi/beverage-machine/internal/domain/payment"
	"github.com/Zhima-Mochi/beverage-machine/internal/domain/sales"
	"github.com/Zhima-Mochi/beverage-machine/internal/observability"
	"github.com/Zhima-Mochi/beverage-machine/internal/observability/logctx"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	machineService     = "beverage-machine"
	useCaseDispense    = "machine.dispense"
	useCasePrintReport = "machine.print_report"
	spanPrefix         = "UC."
)

// Machine takes a purchase request from payment to a served drink, or to a refund when the
// beverage ran out. It is not safe for concurrent use; hosts serialize calls.
type Machine struct {
	cashier   *cashier.Cashier
	dispenser *dispenser.Dispenser

	display  Display
	printer  ReportsPrinter
	notifier Notifier

	log          observability.Logger
	tracer       observability.Tracer
	reqCounter   observability.Counter   // usecase_requests_total{use_case,outcome}
	durHistogram observability.Histogram // usecase_duration_seconds{use_case}
	refunds      observability.Counter   // payment_refunds_total{beverage,outcome}
}

// New wires a Machine. tel may be nil.
func New(deps Dependencies, tel observability.Observability) (*Machine, error) {
	if err := checkDependencies(deps); err != nil {
		return nil, err
	}

	baseLog := observability.NopLogger()
	tracer := observability.NopTracer()
	metricsProvider := observability.NopMetrics()
	if tel != nil {
		baseLog = tel.Logger()
		tracer = tel.Tracer()
		metricsProvider = tel.Metrics()
	}

	return &Machine{
		cashier:      cashier.New(tel),
		dispenser:    dispenser.New(deps.BeverageServer, deps.StockChecker, tel),
		display:      deps.Display,
		printer:      deps.ReportsPrinter,
		notifier:     deps.Notifier,
		log:          baseLog.With(observability.F("service", machineService)),
		tracer:       tracer,
		reqCounter:   metricsProvider.Counter(observability.MUsecaseRequests),
		durHistogram: metricsProvider.Histogram(observability.MUsecaseDuration),
		refunds:      metricsProvider.Counter(observability.MPaymentRefunds),
	}, nil
}

// Dispense handles one purchase attempt to completion:
// payment check, then dispensing, then the shortage compensation if stock ran out.
func (m *Machine) Dispense(ctx context.Context, req beverage.Request) (result Result) {
	ctx, logger := logctx.Enrich(ctx, m.log,
		observability.F("use_case", useCaseDispense),
		observability.F("beverage", req.Beverage.ID()),
		observability.F("sugar", int(req.Sugar)),
		observability.F("money", req.Money),
	)

	ctx, span := m.tracer.Start(ctx, spanPrefix+"Dispense",
		attribute.String("use_case", useCaseDispense),
		attribute.String("beverage.id", req.Beverage.ID()),
		attribute.Int("beverage.sugar", int(req.Sugar)),
		attribute.Int64("payment.money", req.Money),
	)
	start := time.Now()

	defer func() {
		statusText := string(result.Outcome)
		if span != nil {
			span.SetAttributes(attribute.String("dispense.outcome", string(result.Outcome)))
			if result.Err != nil {
				span.RecordError(result.Err)
				span.SetStatus(codes.Error, statusText)
			} else {
				span.SetStatus(codes.Ok, statusText)
			}
			span.End()
		}

		latency := time.Since(start).Seconds()
		m.reqCounter.Add(1,
			observability.L("use_case", useCaseDispense),
			observability.L("outcome", string(result.Outcome)),
		)
		m.durHistogram.Observe(latency,
			observability.L("use_case", useCaseDispense),
		)

		fields := []observability.Field{
			observability.F("outcome", string(result.Outcome)),
			observability.F("latency_seconds", latency),
			observability.F("total_money_earned", m.cashier.TotalMoneyEarned()),
		}
		if result.Missing > 0 {
			fields = append(fields, observability.F("missing", result.Missing))
		}
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			fields = append(fields,
				observability.F("trace_id", sc.TraceID().String()),
				observability.F("span_id", sc.SpanID().String()),
			)
		}
		if result.Err != nil {
			fields = append(fields, observability.F("error", result.Err.Error()))
		}
		logger.Info("use_case_done", fields...)
	}()

	if err := m.cashier.CheckoutPayment(ctx, req.Beverage, req.Money); err != nil {
		var insufficient *payment.InsufficientFundsError
		if errors.As(err, &insufficient) {
			m.display.ShowMissingMoneyMessage(ctx, insufficient.Missing)
			return Result{Outcome: OutcomeRejected, Missing: insufficient.Missing}
		}
		return Result{Outcome: OutcomeInvalid, Err: err}
	}

	if m.dispenser.Dispense(ctx, req.Beverage, req.Sugar) == inventory.OutcomeShortage {
		return m.recoverFromShortage(ctx, req.Beverage)
	}
	return Result{Outcome: OutcomeServed}
}

// recoverFromShortage refunds, then notifies, then tells the customer. The order is fixed.
func (m *Machine) recoverFromShortage(ctx context.Context, b beverage.Beverage) Result {
	result := Result{Outcome: OutcomeShortage}

	refundOutcome := "success"
	if err := m.cashier.RefundBeveragePayment(ctx, b); err != nil {
		refundOutcome = "error"
		result.Err = err
		logctx.FromOr(ctx, m.log).Error("refund_failed", observability.F("error", err))
	}
	m.refunds.Add(1,
		observability.L("beverage", b.ID()),
		observability.L("outcome", refundOutcome),
	)

	m.notifier.NotifyMissingBeverage(ctx, b)
	m.display.ShowBeverageShortageMessage(ctx, b)
	return result
}

// PurchasesReport snapshots the served history and the cash balance. It only reads.
func (m *Machine) PurchasesReport() sales.PurchasesReport {
	history := m.dispenser.DispensedBeverages()
	return sales.NewPurchasesReport(history.Quantities(), m.cashier.TotalMoneyEarned())
}

// PrintPurchasesReport hands a fresh snapshot to the reports printer.
func (m *Machine) PrintPurchasesReport(ctx context.Context) {
	ctx, logger := logctx.Enrich(ctx, m.log, observability.F("use_case", useCasePrintReport))
	ctx, span := m.tracer.Start(ctx, spanPrefix+"PrintPurchasesReport",
		attribute.String("use_case", useCasePrintReport),
	)
	start := time.Now()

	report := m.PurchasesReport()
	m.printer.Print(ctx, report)

	if span != nil {
		span.SetAttributes(
			attribute.Int("report.total_beverages", report.TotalBeverages()),
			attribute.Int64("report.total_money_earned", report.TotalMoneyEarned()),
		)
		span.SetStatus(codes.Ok, "OK")
		span.End()
	}

	latency := time.Since(start).Seconds()
	m.reqCounter.Add(1,
		observability.L("use_case", useCasePrintReport),
		observability.L("outcome", "success"),
	)
	m.durHistogram.Observe(latency, observability.L("use_case", useCasePrintReport))
	logger.Info("use_case_done",
		observability.F("outcome", "success"),
		observability.F("latency_seconds", latency),
		observability.F("total_beverages", report.TotalBeverages()),
		observability.F("total_money_earned", report.TotalMoneyEarned()),
	)
}

// TotalMoneyEarned exposes the cashier balance, in cents.
func (m *Machine) TotalMoneyEarned() int64 {
	return m.cashier.TotalMoneyEarned()
}
