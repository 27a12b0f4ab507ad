package inventory

import "github.com/Zhima-Mochi/beverage-machine/internal/domain/beverage"

// Outcome is the result of a dispense attempt.
type Outcome string

const (
	OutcomeServed   Outcome = "served"
	OutcomeShortage Outcome = "shortage"
)

// History counts successful serves per beverage. Counts only ever grow.
type History struct {
	quantities map[beverage.Beverage]int
}

func NewHistory() History {
	return History{quantities: make(map[beverage.Beverage]int)}
}

func (h *History) Record(b beverage.Beverage) {
	if h.quantities == nil {
		h.quantities = make(map[beverage.Beverage]int)
	}
	h.quantities[b]++
}

func (h History) Count(b beverage.Beverage) int { return h.quantities[b] }

func (h History) Total() int {
	total := 0
	for _, n := range h.quantities {
		total += n
	}
	return total
}

// Quantities returns a copy of the per-beverage counts.
func (h History) Quantities() map[beverage.Beverage]int {
	out := make(map[beverage.Beverage]int, len(h.quantities))
	for b, n := range h.quantities {
		out[b] = n
	}
	return out
}

// Clone returns an independent copy of the history.
func (h History) Clone() History {
	return History{quantities: h.Quantities()}
}
