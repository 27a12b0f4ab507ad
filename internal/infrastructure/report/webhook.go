package report

import (
	"context"
	"fmt"
	"time"

	"github.com/Zhima-Mochi/beverage-machine/internal/domain/sales"
	"github.com/Zhima-Mochi/beverage-machine/internal/observability"
	"github.com/Zhima-Mochi/beverage-machine/internal/observability/logctx"
	"github.com/go-resty/resty/v2"
)

const (
	webhookPeer     = "report_webhook"
	webhookEndpoint = "report.print"
	webhookTimeout  = 5 * time.Second
)

// WebhookPrinter posts the report as JSON to an operator endpoint.
// Delivery errors are logged and counted; the machine never sees them.
type WebhookPrinter struct {
	client       *resty.Client
	url          string
	log          observability.Logger
	extCounter   observability.Counter
	extHistogram observability.Histogram
}

func NewWebhookPrinter(url string, tel observability.Observability) *WebhookPrinter {
	baseLog := observability.NopLogger()
	metricsProvider := observability.NopMetrics()
	if tel != nil {
		baseLog = tel.Logger()
		metricsProvider = tel.Metrics()
	}
	return &WebhookPrinter{
		client:       resty.New().SetTimeout(webhookTimeout),
		url:          url,
		log:          baseLog.With(observability.F("component", "report_webhook")),
		extCounter:   metricsProvider.Counter(observability.MExternalRequests),
		extHistogram: metricsProvider.Histogram(observability.MExternalRequestDuration),
	}
}

func (p *WebhookPrinter) Print(ctx context.Context, report sales.PurchasesReport) {
	start := time.Now()
	err := p.send(ctx, report)

	outcome := "success"
	if err != nil {
		outcome = "error"
		logctx.FromOr(ctx, p.log).Warn("report_webhook_failed",
			observability.F("url", p.url),
			observability.F("error", err),
		)
	}
	p.extCounter.Add(1,
		observability.L("peer", webhookPeer),
		observability.L("endpoint", webhookEndpoint),
		observability.L("outcome", outcome),
	)
	p.extHistogram.Observe(time.Since(start).Seconds(),
		observability.L("peer", webhookPeer),
		observability.L("endpoint", webhookEndpoint),
	)
}

func (p *WebhookPrinter) send(ctx context.Context, report sales.PurchasesReport) error {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(report).
		Post(p.url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("report webhook status: %d", resp.StatusCode())
	}
	return nil
}
