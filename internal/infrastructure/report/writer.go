package report

import (
	"context"
	"fmt"
	"io"
	"sync"
	"text/tabwriter"

	"github.com/Zhima-Mochi/beverage-machine/internal/domain/sales"
	"github.com/Zhima-Mochi/beverage-machine/internal/observability"
	"github.com/Zhima-Mochi/beverage-machine/internal/observability/logctx"
)

// WriterPrinter renders the report as an aligned text table.
type WriterPrinter struct {
	mu  sync.Mutex
	w   io.Writer
	log observability.Logger
}

func NewWriterPrinter(w io.Writer, logger observability.Logger) *WriterPrinter {
	if logger == nil {
		logger = observability.NopLogger()
	}
	return &WriterPrinter{w: w, log: logger}
}

func (p *WriterPrinter) Print(ctx context.Context, report sales.PurchasesReport) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := Render(p.w, report); err != nil {
		logctx.FromOr(ctx, p.log).Warn("report_write_failed", observability.F("error", err))
	}
}

// Render writes one row per beverage followed by the totals. Money is printed in cents.
func Render(w io.Writer, report sales.PurchasesReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BEVERAGE\tQUANTITY")
	for _, l := range report.Lines() {
		fmt.Fprintf(tw, "%s\t%d\n", l.Beverage.ID(), l.Quantity)
	}
	fmt.Fprintf(tw, "TOTAL\t%d\n", report.TotalBeverages())
	fmt.Fprintf(tw, "EARNED (cents)\t%d\n", report.TotalMoneyEarned())
	return tw.Flush()
}
