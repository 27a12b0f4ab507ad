// Package report holds the machine's reports printers: structured log, plain text and webhook.
package report

import (
	"context"

	"github.com/Zhima-Mochi/beverage-machine/internal/application/machine"
	"github.com/Zhima-Mochi/beverage-machine/internal/domain/sales"
	"github.com/Zhima-Mochi/beverage-machine/internal/observability"
	"github.com/Zhima-Mochi/beverage-machine/internal/observability/logctx"
)

// LogPrinter writes the report as one structured log entry.
type LogPrinter struct {
	log observability.Logger
}

func NewLogPrinter(logger observability.Logger) *LogPrinter {
	if logger == nil {
		logger = observability.NopLogger()
	}
	return &LogPrinter{log: logger.With(observability.F("component", "reports_printer"))}
}

func (p *LogPrinter) Print(ctx context.Context, report sales.PurchasesReport) {
	beverages := make(map[string]int, len(report.Lines()))
	for _, l := range report.Lines() {
		beverages[l.Beverage.ID()] = l.Quantity
	}
	logctx.FromOr(ctx, p.log).Info("purchases_report",
		observability.F("beverages", beverages),
		observability.F("total_beverages", report.TotalBeverages()),
		observability.F("total_money_earned", report.TotalMoneyEarned()),
	)
}

// MultiPrinter hands the same report to every printer, in order.
type MultiPrinter []machine.ReportsPrinter

func (m MultiPrinter) Print(ctx context.Context, report sales.PurchasesReport) {
	for _, p := range m {
		if p != nil {
			p.Print(ctx, report)
		}
	}
}
