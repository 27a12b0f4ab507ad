package machine

import (
	"context"

	"github.com/Zhima-Mochi/beverage-machine/internal/domain/beverage"
	"github.com/Zhima-Mochi/beverage-machine/internal/domain/sales"
)

// Notifier tells the operator a beverage ran out. Called once per shortage.
type Notifier interface {
	NotifyMissingBeverage(ctx context.Context, b beverage.Beverage)
}

// Display shows customer facing messages. Amounts are in cents.
type Display interface {
	ShowMissingMoneyMessage(ctx context.Context, missing int64)
	ShowBeverageShortageMessage(ctx context.Context, b beverage.Beverage)
}

type ReportsPrinter interface {
	Print(ctx context.Context, report sales.PurchasesReport)
}
