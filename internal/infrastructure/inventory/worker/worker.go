package worker

import (
	"context"

	"github.com/Zhima-Mochi/beverage-machine/internal/application"
	"github.com/Zhima-Mochi/beverage-machine/internal/application/restock"
	dominv "github.com/Zhima-Mochi/beverage-machine/internal/domain/inventory"
	domoutbox "github.com/Zhima-Mochi/beverage-machine/internal/domain/outbox"
	"github.com/Zhima-Mochi/beverage-machine/internal/observability"
	"github.com/Zhima-Mochi/beverage-machine/internal/observability/logctx"
	workerpresentation "github.com/Zhima-Mochi/beverage-machine/internal/presentation/worker"
)

const workerComponent = "restock_worker"

// Worker feeds shortage events from the outbox into the restock use case.
type Worker struct {
	subscriber domoutbox.Subscriber
	useCase    application.UseCase[dominv.BeverageShortageEvent, *restock.Result]
	log        observability.Logger
}

func New(
	subscriber domoutbox.Subscriber,
	useCase application.UseCase[dominv.BeverageShortageEvent, *restock.Result],
	logger observability.Logger,
) *Worker {
	if logger == nil {
		logger = observability.NopLogger()
	}
	return &Worker{
		subscriber: subscriber,
		useCase:    useCase,
		log:        logger.With(observability.F("component", workerComponent)),
	}
}

func (w *Worker) Start() {
	if w.subscriber == nil || w.useCase == nil {
		return
	}
	w.subscriber.Subscribe(dominv.BeverageShortageEvent{}.EventName(), w.handleShortage)
}

func (w *Worker) handleShortage(ctx context.Context, e domoutbox.Event) error {
	evt, ok := e.(dominv.BeverageShortageEvent)
	if !ok {
		return nil
	}

	ctx = workerpresentation.WithEventContext(ctx, w.log, e, map[string]string{
		"beverage": evt.Beverage.ID(),
	})
	logger := logctx.FromOr(ctx, w.log)

	res, err := w.useCase.Execute(ctx, evt)
	if err != nil {
		logger.Warn("restock_failed", observability.F("error", err))
		return err
	}

	logger.Info("shortage_handled",
		observability.F("restocked", res.Restocked),
		observability.F("remaining", res.Remaining),
	)
	return nil
}
