package cashier

import (
	"context"
	"fmt"

	"github.com/Zhima-Mochi/beverage-machine/internal/domain/beverage"
	"github.com/Zhima-Mochi/beverage-machine/internal/domain/payment"
	"github.com/Zhima-Mochi/beverage-machine/internal/observability"
	"github.com/Zhima-Mochi/beverage-machine/internal/observability/logctx"
)

const componentCashier = "cashier"

// Cashier is the single source of truth for money accepted and refunded.
// It keeps one running total, not a ledger of individual sales.
type Cashier struct {
	cash payment.Cash
	log  observability.Logger
}

func New(tel observability.Observability) *Cashier {
	baseLog := observability.NopLogger()
	if tel != nil {
		baseLog = tel.Logger()
	}
	return &Cashier{
		log: baseLog.With(observability.F("component", componentCashier)),
	}
}

// CheckoutPayment deposits the catalog price when money covers it. Otherwise it returns a
// *payment.InsufficientFundsError with the exact shortfall and leaves the balance untouched.
func (c *Cashier) CheckoutPayment(ctx context.Context, b beverage.Beverage, money int64) error {
	logger := logctx.FromOr(ctx, c.log)
	price := beverage.Price(b)

	if money < price {
		missing := price - money
		logger.Info("payment_rejected",
			observability.F("payment_status", payment.StatusRejected),
			observability.F("price", price),
			observability.F("missing", missing),
		)
		return &payment.InsufficientFundsError{Price: price, Missing: missing}
	}

	if err := c.cash.Deposit(price); err != nil {
		return fmt.Errorf("cashier: deposit %s: %w", b.ID(), err)
	}

	logger.Debug("payment_accepted",
		observability.F("payment_status", payment.StatusAccepted),
		observability.F("price", price),
		observability.F("balance", c.cash.Balance()),
	)
	return nil
}

// RefundBeveragePayment withdraws the catalog price of b. The caller must only refund a sale
// it checked out and has not refunded yet.
func (c *Cashier) RefundBeveragePayment(ctx context.Context, b beverage.Beverage) error {
	price := beverage.Price(b)
	if err := c.cash.Withdraw(price); err != nil {
		return fmt.Errorf("cashier: refund %s: %w", b.ID(), err)
	}

	logctx.FromOr(ctx, c.log).Info("payment_refunded",
		observability.F("payment_status", payment.StatusRefunded),
		observability.F("amount", price),
		observability.F("balance", c.cash.Balance()),
	)
	return nil
}

// TotalMoneyEarned is the net of accepted sales minus shortage refunds, in cents.
func (c *Cashier) TotalMoneyEarned() int64 {
	return c.cash.Balance()
}
