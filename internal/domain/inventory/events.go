package inventory

import (
	"time"

	"github.com/Zhima-Mochi/beverage-machine/internal/domain/beverage"
)

// BeverageShortageEvent is emitted when a paid request could not be served because stock ran out.
type BeverageShortageEvent struct {
	Beverage   beverage.Beverage
	OccurredAt time.Time
}

func (BeverageShortageEvent) EventName() string { return "inventory.beverage_shortage" }

func NewBeverageShortageEvent(b beverage.Beverage) BeverageShortageEvent {
	return BeverageShortageEvent{
		Beverage:   b,
		OccurredAt: time.Now().UTC(),
	}
}

// BeverageRestockedEvent is emitted after units were added back for a beverage.
type BeverageRestockedEvent struct {
	Beverage   beverage.Beverage
	Quantity   int
	Remaining  int
	OccurredAt time.Time
}

func (BeverageRestockedEvent) EventName() string { return "inventory.beverage_restocked" }

func NewBeverageRestockedEvent(b beverage.Beverage, quantity, remaining int) BeverageRestockedEvent {
	return BeverageRestockedEvent{
		Beverage:   b,
		Quantity:   quantity,
		Remaining:  remaining,
		OccurredAt: time.Now().UTC(),
	}
}
