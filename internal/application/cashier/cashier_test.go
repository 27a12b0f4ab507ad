package cashier

import (
	"context"
	"errors"
	"testing"

	"github.com/Zhima-Mochi/beverage-machine/internal/domain/beverage"
	"github.com/Zhima-Mochi/beverage-machine/internal/domain/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutPaymentAcceptsPriceOrMore(t *testing.T) {
	ctx := context.Background()
	for _, b := range beverage.All() {
		price := beverage.Price(b)
		for _, money := range []int64{price, price + 1, 100, 1000} {
			c := New(nil)
			require.NoError(t, c.CheckoutPayment(ctx, beverage.Tea(beverage.Standard), 40))
			before := c.TotalMoneyEarned()

			err := c.CheckoutPayment(ctx, b, money)

			require.NoError(t, err, "%s paying %d", b.ID(), money)
			assert.Equal(t, before+price, c.TotalMoneyEarned(), "%s paying %d", b.ID(), money)
		}
	}
}

func TestCheckoutPaymentRejectsLessThanPrice(t *testing.T) {
	ctx := context.Background()
	for _, b := range beverage.All() {
		price := beverage.Price(b)
		for _, money := range []int64{0, 1, price / 2, price - 1} {
			c := New(nil)
			require.NoError(t, c.CheckoutPayment(ctx, beverage.Tea(beverage.Standard), 40))

			err := c.CheckoutPayment(ctx, b, money)

			require.ErrorIs(t, err, payment.ErrInsufficientFunds)
			var insufficient *payment.InsufficientFundsError
			require.True(t, errors.As(err, &insufficient))
			assert.Equal(t, price-money, insufficient.Missing, "%s paying %d", b.ID(), money)
			assert.Equal(t, int64(40), c.TotalMoneyEarned())
		}
	}
}

func TestRefundBeveragePayment(t *testing.T) {
	ctx := context.Background()
	c := New(nil)
	require.NoError(t, c.CheckoutPayment(ctx, beverage.HotChocolate(beverage.ExtraHot), 50))
	require.NoError(t, c.CheckoutPayment(ctx, beverage.Coffee(beverage.Standard), 60))

	require.NoError(t, c.RefundBeveragePayment(ctx, beverage.Coffee(beverage.Standard)))

	assert.Equal(t, int64(50), c.TotalMoneyEarned())
}

func TestRefundWithoutDepositIsRefused(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.CheckoutPayment(context.Background(), beverage.Tea(beverage.Standard), 40))

	err := c.RefundBeveragePayment(context.Background(), beverage.OrangeJuice())

	assert.ErrorIs(t, err, payment.ErrOverdraw)
	assert.Equal(t, int64(40), c.TotalMoneyEarned())
}

func TestCheckoutPaymentRejectsUnpricedBeverage(t *testing.T) {
	c := New(nil)

	err := c.CheckoutPayment(context.Background(), beverage.Beverage{Kind: "soup"}, 100)

	assert.ErrorIs(t, err, payment.ErrInvalidAmount)
	assert.NotErrorIs(t, err, payment.ErrInsufficientFunds)
	assert.Zero(t, c.TotalMoneyEarned())
}
