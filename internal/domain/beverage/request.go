package beverage

import "fmt"

type SugarAmount int

const (
	SugarZero SugarAmount = iota
	SugarOne
	SugarTwo
)

func ParseSugar(n int) (SugarAmount, error) {
	switch SugarAmount(n) {
	case SugarZero, SugarOne, SugarTwo:
		return SugarAmount(n), nil
	default:
		return SugarZero, fmt.Errorf("%w: got %d", ErrUnknownSugar, n)
	}
}

// Request is a single purchase attempt. Money is expressed in cents.
type Request struct {
	Beverage Beverage
	Sugar    SugarAmount
	Money    int64
}

func NewRequest(b Beverage, sugar SugarAmount, money int64) (Request, error) {
	if money < 0 {
		return Request{}, ErrNegativeMoney
	}
	if _, err := ParseSugar(int(sugar)); err != nil {
		return Request{}, err
	}
	return Request{Beverage: b, Sugar: sugar, Money: money}, nil
}
