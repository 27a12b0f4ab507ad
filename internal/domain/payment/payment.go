package payment

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientFunds = errors.New("payment: insufficient funds")
	ErrInvalidAmount     = errors.New("payment: amount must be greater than zero")
	ErrOverdraw          = errors.New("payment: withdrawal exceeds cash balance")
)

// Status describes how a checkout ended.
type Status string

const (
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusRefunded Status = "refunded"
)

// InsufficientFundsError carries the exact amount, in cents, the customer is missing.
type InsufficientFundsError struct {
	Price   int64
	Missing int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("payment: insufficient funds: price %d, missing %d", e.Price, e.Missing)
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}
