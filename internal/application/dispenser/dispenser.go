package dispenser

import (
	"context"

	"github.com/Zhima-Mochi/beverage-machine/internal/domain/beverage"
	"github.com/Zhima-Mochi/beverage-machine/internal/domain/inventory"
	"github.com/Zhima-Mochi/beverage-machine/internal/observability"
	"github.com/Zhima-Mochi/beverage-machine/internal/observability/logctx"
)

const componentDispenser = "dispenser"

// Dispenser sits between an accepted payment and a served drink and keeps the served history.
type Dispenser struct {
	server  BeverageServer
	stock   StockChecker
	history inventory.History

	log    observability.Logger
	served observability.Counter // beverages_served_total{beverage}
}

func New(server BeverageServer, stock StockChecker, tel observability.Observability) *Dispenser {
	baseLog := observability.NopLogger()
	metricsProvider := observability.NopMetrics()
	if tel != nil {
		baseLog = tel.Logger()
		metricsProvider = tel.Metrics()
	}
	return &Dispenser{
		server:  server,
		stock:   stock,
		history: inventory.NewHistory(),
		log:     baseLog.With(observability.F("component", componentDispenser)),
		served:  metricsProvider.Counter(observability.MBeveragesServed),
	}
}

// Dispense serves b unless it is out of stock. A shortage has no side effect at all;
// a serve is always followed by exactly one history entry.
func (d *Dispenser) Dispense(ctx context.Context, b beverage.Beverage, sugar beverage.SugarAmount) inventory.Outcome {
	logger := logctx.FromOr(ctx, d.log)

	if d.stock.IsEmpty(ctx, b) {
		logger.Warn("beverage_shortage")
		return inventory.OutcomeShortage
	}

	d.server.Serve(ctx, b, sugar)
	d.history.Record(b)

	d.served.Add(1, observability.L("beverage", b.ID()))
	logger.Info("beverage_served",
		observability.F("served_count", d.history.Count(b)),
	)
	return inventory.OutcomeServed
}

// DispensedBeverages returns a copy of the served history.
func (d *Dispenser) DispensedBeverages() inventory.History {
	return d.history.Clone()
}
