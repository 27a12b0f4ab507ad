package beverage

// Price returns the catalog price in cents. The hot option never changes the price.
func Price(b Beverage) int64 {
	switch b.Kind {
	case KindCoffee, KindOrangeJuice:
		return 60
	case KindTea:
		return 40
	case KindHotChocolate:
		return 50
	default:
		return 0
	}
}
