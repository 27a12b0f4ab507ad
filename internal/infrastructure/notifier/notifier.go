package notifier

import (
	"context"
	"time"

	"github.com/Zhima-Mochi/beverage-machine/internal/domain/beverage"
	dominv "github.com/Zhima-Mochi/beverage-machine/internal/domain/inventory"
	domoutbox "github.com/Zhima-Mochi/beverage-machine/internal/domain/outbox"
	"github.com/Zhima-Mochi/beverage-machine/internal/observability"
	"github.com/Zhima-Mochi/beverage-machine/internal/observability/logctx"
)

const (
	publishPeer      = "outbox"
	endpointShortage = "inventory.beverage_shortage"
	publishTimeout   = 300 * time.Millisecond
)

// BusNotifier turns missing-beverage notifications into shortage events on the outbox.
// A failed publish is logged and counted; it never reaches the machine.
type BusNotifier struct {
	publisher    domoutbox.Publisher
	log          observability.Logger
	extCounter   observability.Counter   // external_requests_total{peer,endpoint,outcome}
	extHistogram observability.Histogram // external_request_duration_seconds{peer,endpoint}
}

func NewBusNotifier(publisher domoutbox.Publisher, tel observability.Observability) *BusNotifier {
	baseLog := observability.NopLogger()
	metricsProvider := observability.NopMetrics()
	if tel != nil {
		baseLog = tel.Logger()
		metricsProvider = tel.Metrics()
	}
	return &BusNotifier{
		publisher:    publisher,
		log:          baseLog.With(observability.F("component", "notifier")),
		extCounter:   metricsProvider.Counter(observability.MExternalRequests),
		extHistogram: metricsProvider.Histogram(observability.MExternalRequestDuration),
	}
}

func (n *BusNotifier) NotifyMissingBeverage(ctx context.Context, b beverage.Beverage) {
	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	start := time.Now()
	err := n.publisher.Publish(pubCtx, dominv.NewBeverageShortageEvent(b))
	outcome := "success"
	if err != nil {
		outcome = "error"
		logctx.FromOr(ctx, n.log).Error("shortage_notification_failed",
			observability.F("beverage", b.ID()),
			observability.F("error", err),
		)
	}

	n.extCounter.Add(1,
		observability.L("peer", publishPeer),
		observability.L("endpoint", endpointShortage),
		observability.L("outcome", outcome),
	)
	n.extHistogram.Observe(time.Since(start).Seconds(),
		observability.L("peer", publishPeer),
		observability.L("endpoint", endpointShortage),
	)
}
