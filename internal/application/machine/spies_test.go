package machine_test

import (
	"context"

	"github.com/Zhima-Mochi/beverage-machine/internal/application/machine"
	"github.com/Zhima-Mochi/beverage-machine/internal/domain/beverage"
	"github.com/Zhima-Mochi/beverage-machine/internal/domain/sales"
	"github.com/Zhima-Mochi/beverage-machine/internal/observability"
)

// recorder keeps the order in which collaborators were called.
type recorder struct {
	calls []string
}

func (r *recorder) record(call string) { r.calls = append(r.calls, call) }

type servedCall struct {
	beverage beverage.Beverage
	sugar    beverage.SugarAmount
}

type beverageServerSpy struct {
	rec    *recorder
	served []servedCall
}

func (s *beverageServerSpy) Serve(_ context.Context, b beverage.Beverage, sugar beverage.SugarAmount) {
	s.served = append(s.served, servedCall{beverage: b, sugar: sugar})
	s.rec.record("serve:" + b.ID())
}

type stockCheckerFake struct {
	empty map[beverage.Beverage]bool
}

func (f *stockCheckerFake) IsEmpty(_ context.Context, b beverage.Beverage) bool {
	return f.empty[b]
}

type displaySpy struct {
	rec       *recorder
	missing   []int64
	shortages []beverage.Beverage
}

func (d *displaySpy) ShowMissingMoneyMessage(_ context.Context, missing int64) {
	d.missing = append(d.missing, missing)
	d.rec.record("display:missing_money")
}

func (d *displaySpy) ShowBeverageShortageMessage(_ context.Context, b beverage.Beverage) {
	d.shortages = append(d.shortages, b)
	d.rec.record("display:shortage:" + b.ID())
}

type notifierSpy struct {
	rec      *recorder
	notified []beverage.Beverage
	// balance, when set, is read at notification time.
	balance          func() int64
	balanceAtNotices []int64
}

func (n *notifierSpy) NotifyMissingBeverage(_ context.Context, b beverage.Beverage) {
	n.notified = append(n.notified, b)
	n.rec.record("notify:" + b.ID())
	if n.balance != nil {
		n.balanceAtNotices = append(n.balanceAtNotices, n.balance())
	}
}

type reportsPrinterSpy struct {
	reports []sales.PurchasesReport
}

func (p *reportsPrinterSpy) Print(_ context.Context, report sales.PurchasesReport) {
	p.reports = append(p.reports, report)
}

type fixture struct {
	rec      *recorder
	server   *beverageServerSpy
	stock    *stockCheckerFake
	display  *displaySpy
	notifier *notifierSpy
	printer  *reportsPrinterSpy
	machine  *machine.Machine
}

func newFixture(tel observability.Observability) (*fixture, error) {
	rec := &recorder{}
	f := &fixture{
		rec:      rec,
		server:   &beverageServerSpy{rec: rec},
		stock:    &stockCheckerFake{empty: map[beverage.Beverage]bool{}},
		display:  &displaySpy{rec: rec},
		notifier: &notifierSpy{rec: rec},
		printer:  &reportsPrinterSpy{},
	}

	m, err := machine.NewBuilder().
		WithBeverageServer(f.server).
		WithStockChecker(f.stock).
		WithDisplay(f.display).
		WithReportsPrinter(f.printer).
		WithNotifier(f.notifier).
		WithObservability(tel).
		Build()
	if err != nil {
		return nil, err
	}
	f.machine = m
	f.notifier.balance = m.TotalMoneyEarned
	return f, nil
}

func (f *fixture) dispense(b beverage.Beverage, sugar beverage.SugarAmount, money int64) machine.Result {
	return f.machine.Dispense(context.Background(), beverage.Request{Beverage: b, Sugar: sugar, Money: money})
}
