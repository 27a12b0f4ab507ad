package inventory

import (
	"errors"
	"time"

	"github.com/Zhima-Mochi/beverage-machine/internal/domain/beverage"
)

var (
	ErrNotFound          = errors.New("inventory: beverage not stocked")
	ErrInvalidQuantity   = errors.New("inventory: quantity must be greater than zero")
	ErrInsufficientStock = errors.New("inventory: insufficient stock")
)

const (
	FailureReasonNotFound          = "not_found"
	FailureReasonInsufficientStock = "insufficient_stock"
)

// Item tracks the units left for one beverage variant.
type Item struct {
	Beverage  beverage.Beverage
	Quantity  int
	UpdatedAt time.Time
}

func NewItem(b beverage.Beverage, quantity int) (*Item, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	return &Item{
		Beverage:  b,
		Quantity:  quantity,
		UpdatedAt: time.Now().UTC(),
	}, nil
}

func (i *Item) IsEmpty() bool { return i.Quantity <= 0 }

func (i *Item) Deduct(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > i.Quantity {
		return ErrInsufficientStock
	}
	i.Quantity -= quantity
	i.touch()
	return nil
}

func (i *Item) Restock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	i.Quantity += quantity
	i.touch()
	return nil
}

func (i *Item) touch() {
	i.UpdatedAt = time.Now().UTC()
}
