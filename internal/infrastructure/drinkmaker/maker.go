// Package drinkmaker adapts the machine's collaborator ports to the drink maker protocol:
// every action becomes one text command such as "Ch:1:0" or "M:Sorry, tea is empty.".
package drinkmaker

import (
	"context"

	"github.com/Zhima-Mochi/beverage-machine/internal/observability"
	"github.com/Zhima-Mochi/beverage-machine/internal/observability/logctx"
)

// DrinkMaker receives protocol commands. Delivery faults stay inside the implementation.
type DrinkMaker interface {
	Execute(ctx context.Context, command string)
}

// LogMaker stands in for the hardware by logging each command.
type LogMaker struct {
	log observability.Logger
}

func NewLogMaker(logger observability.Logger) *LogMaker {
	if logger == nil {
		logger = observability.NopLogger()
	}
	return &LogMaker{log: logger.With(observability.F("component", "drink_maker"))}
}

func (m *LogMaker) Execute(ctx context.Context, command string) {
	logctx.FromOr(ctx, m.log).Info("drink_maker_command", observability.F("command", command))
}
