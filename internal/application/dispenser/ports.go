package dispenser

import (
	"context"

	"github.com/Zhima-Mochi/beverage-machine/internal/domain/beverage"
)

// StockChecker reports whether a beverage ran out. It must not have side effects.
type StockChecker interface {
	IsEmpty(ctx context.Context, b beverage.Beverage) bool
}

// BeverageServer physically prepares the drink. Hardware faults are its own concern.
type BeverageServer interface {
	Serve(ctx context.Context, b beverage.Beverage, sugar beverage.SugarAmount)
}
