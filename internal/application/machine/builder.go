package machine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Zhima-Mochi/beverage-machine/internal/application/dispenser"
	"github.com/Zhima-Mochi/beverage-machine/internal/observability"
)

var ErrMissingDependency = errors.New("machine: missing dependency")

// Dependencies lists the collaborators a Machine needs. They are shared with the caller and
// must outlive the Machine.
type Dependencies struct {
	BeverageServer dispenser.BeverageServer
	StockChecker   dispenser.StockChecker
	Display        Display
	ReportsPrinter ReportsPrinter
	Notifier       Notifier
}

func (d Dependencies) missing() []string {
	var out []string
	if d.BeverageServer == nil {
		out = append(out, "beverage server")
	}
	if d.StockChecker == nil {
		out = append(out, "stock checker")
	}
	if d.Display == nil {
		out = append(out, "display")
	}
	if d.ReportsPrinter == nil {
		out = append(out, "reports printer")
	}
	if d.Notifier == nil {
		out = append(out, "notifier")
	}
	return out
}

// Builder collects the collaborators one by one; Build checks that none was forgotten.
type Builder struct {
	deps Dependencies
	tel  observability.Observability
}

func NewBuilder() *Builder { return &Builder{} }

func (b *Builder) WithBeverageServer(s dispenser.BeverageServer) *Builder {
	b.deps.BeverageServer = s
	return b
}

func (b *Builder) WithStockChecker(c dispenser.StockChecker) *Builder {
	b.deps.StockChecker = c
	return b
}

func (b *Builder) WithDisplay(d Display) *Builder {
	b.deps.Display = d
	return b
}

func (b *Builder) WithReportsPrinter(p ReportsPrinter) *Builder {
	b.deps.ReportsPrinter = p
	return b
}

func (b *Builder) WithNotifier(n Notifier) *Builder {
	b.deps.Notifier = n
	return b
}

// WithObservability is optional; without it the machine logs and measures nothing.
func (b *Builder) WithObservability(tel observability.Observability) *Builder {
	b.tel = tel
	return b
}

func (b *Builder) Build() (*Machine, error) {
	return New(b.deps, b.tel)
}

func checkDependencies(deps Dependencies) error {
	if missing := deps.missing(); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingDependency, strings.Join(missing, ", "))
	}
	return nil
}
