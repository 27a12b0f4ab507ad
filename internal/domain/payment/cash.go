package payment

// Cash is the running balance of the machine, in cents. The zero value is an empty drawer.
type Cash struct {
	balance int64
}

func (c *Cash) Deposit(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	c.balance += amount
	return nil
}

// Withdraw removes amount from the balance. The balance never goes negative.
func (c *Cash) Withdraw(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > c.balance {
		return ErrOverdraw
	}
	c.balance -= amount
	return nil
}

func (c *Cash) Balance() int64 { return c.balance }
