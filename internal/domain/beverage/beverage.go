package beverage

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownBeverage = errors.New("beverage: unknown beverage")
	ErrUnknownSugar    = errors.New("beverage: sugar amount must be 0, 1 or 2")
	ErrNegativeMoney   = errors.New("beverage: money must be zero or greater")
)

type Kind string

const (
	KindCoffee       Kind = "coffee"
	KindTea          Kind = "tea"
	KindHotChocolate Kind = "hot_chocolate"
	KindOrangeJuice  Kind = "orange_juice"
)

// HotOption selects the serving temperature of hot drinks.
type HotOption string

const (
	Standard HotOption = "standard"
	ExtraHot HotOption = "extra_hot"
)

// Beverage identifies a purchasable item. It is comparable and safe to use as a map key.
// Orange juice has no temperature axis and always carries the Standard option.
type Beverage struct {
	Kind   Kind
	Option HotOption
}

func Coffee(opt HotOption) Beverage       { return Beverage{Kind: KindCoffee, Option: normalize(opt)} }
func Tea(opt HotOption) Beverage          { return Beverage{Kind: KindTea, Option: normalize(opt)} }
func HotChocolate(opt HotOption) Beverage { return Beverage{Kind: KindHotChocolate, Option: normalize(opt)} }
func OrangeJuice() Beverage               { return Beverage{Kind: KindOrangeJuice, Option: Standard} }

// All lists every catalog variant in a stable order.
func All() []Beverage {
	return []Beverage{
		Coffee(Standard), Coffee(ExtraHot),
		Tea(Standard), Tea(ExtraHot),
		HotChocolate(Standard), HotChocolate(ExtraHot),
		OrangeJuice(),
	}
}

// New builds a beverage from its kind and option, rejecting unknown kinds.
func New(kind Kind, opt HotOption) (Beverage, error) {
	switch kind {
	case KindCoffee:
		return Coffee(opt), nil
	case KindTea:
		return Tea(opt), nil
	case KindHotChocolate:
		return HotChocolate(opt), nil
	case KindOrangeJuice:
		return OrangeJuice(), nil
	default:
		return Beverage{}, fmt.Errorf("%w: %q", ErrUnknownBeverage, kind)
	}
}

// Parse accepts the identifiers produced by ID, e.g. "coffee" or "tea:extra_hot".
func Parse(id string) (Beverage, error) {
	kind, opt, _ := strings.Cut(strings.TrimSpace(id), ":")
	if opt == "" {
		opt = string(Standard)
	}
	if HotOption(opt) != Standard && HotOption(opt) != ExtraHot {
		return Beverage{}, fmt.Errorf("%w: option %q", ErrUnknownBeverage, opt)
	}
	return New(Kind(kind), HotOption(opt))
}

// ID is a stable, low-cardinality identifier used in logs, metric labels and URLs.
func (b Beverage) ID() string {
	if b.Option == ExtraHot {
		return string(b.Kind) + ":" + string(ExtraHot)
	}
	return string(b.Kind)
}

func (b Beverage) IsExtraHot() bool { return b.Option == ExtraHot }

// String returns the customer facing name; the hot option is not part of it.
func (b Beverage) String() string {
	switch b.Kind {
	case KindCoffee:
		return "coffee"
	case KindTea:
		return "tea"
	case KindHotChocolate:
		return "hot chocolate"
	case KindOrangeJuice:
		return "orange juice"
	default:
		return string(b.Kind)
	}
}

func normalize(opt HotOption) HotOption {
	if opt == ExtraHot {
		return ExtraHot
	}
	return Standard
}
