package payment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCashDepositAndWithdraw(t *testing.T) {
	var cash Cash

	require.NoError(t, cash.Deposit(60))
	require.NoError(t, cash.Deposit(40))
	assert.Equal(t, int64(100), cash.Balance())

	require.NoError(t, cash.Withdraw(60))
	assert.Equal(t, int64(40), cash.Balance())
}

func TestCashRejectsInvalidAmounts(t *testing.T) {
	var cash Cash

	assert.ErrorIs(t, cash.Deposit(0), ErrInvalidAmount)
	assert.ErrorIs(t, cash.Deposit(-5), ErrInvalidAmount)
	assert.ErrorIs(t, cash.Withdraw(0), ErrInvalidAmount)
	assert.Zero(t, cash.Balance())
}

func TestCashNeverGoesNegative(t *testing.T) {
	var cash Cash
	require.NoError(t, cash.Deposit(40))

	err := cash.Withdraw(60)

	assert.ErrorIs(t, err, ErrOverdraw)
	assert.Equal(t, int64(40), cash.Balance())
}

func TestInsufficientFundsError(t *testing.T) {
	var err error = &InsufficientFundsError{Price: 60, Missing: 1}

	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.NotErrorIs(t, err, ErrOverdraw)

	var target *InsufficientFundsError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, int64(1), target.Missing)
	assert.Contains(t, err.Error(), "missing 1")
}
