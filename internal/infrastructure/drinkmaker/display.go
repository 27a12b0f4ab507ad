package drinkmaker

import (
	"context"
	"fmt"

	"github.com/Zhima-Mochi/beverage-machine/internal/domain/beverage"
)

// Display forwards customer messages to the drink maker's message channel.
type Display struct {
	maker DrinkMaker
}

func NewDisplay(maker DrinkMaker) *Display {
	return &Display{maker: maker}
}

func (d *Display) ShowMissingMoneyMessage(ctx context.Context, missing int64) {
	d.maker.Execute(ctx, Message(formatEuros(missing)+"€"))
}

func (d *Display) ShowBeverageShortageMessage(ctx context.Context, b beverage.Beverage) {
	d.maker.Execute(ctx, Message(fmt.Sprintf("Sorry, %s is empty.", b)))
}

// Message wraps free text in the drink maker's message command.
func Message(text string) string {
	return "M:" + text
}

// formatEuros renders cents with the fewest decimals needed: 1 -> 0.01, 60 -> 0.6, 100 -> 1.
func formatEuros(cents int64) string {
	sign := ""
	if cents < 0 {
		sign, cents = "-", -cents
	}
	units, rest := cents/100, cents%100
	switch {
	case rest == 0:
		return fmt.Sprintf("%s%d", sign, units)
	case rest%10 == 0:
		return fmt.Sprintf("%s%d.%d", sign, units, rest/10)
	default:
		return fmt.Sprintf("%s%d.%02d", sign, units, rest)
	}
}
