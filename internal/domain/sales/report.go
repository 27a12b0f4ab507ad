package sales

import (
	"encoding/json"
	"sort"

	"github.com/Zhima-Mochi/beverage-machine/internal/domain/beverage"
)

// PurchasesReport is an immutable snapshot of what was sold and the cash the operator is owed.
type PurchasesReport struct {
	quantities       map[beverage.Beverage]int
	totalMoneyEarned int64
}

// Line is one row of a report, ordered by beverage ID when produced by Lines.
type Line struct {
	Beverage beverage.Beverage
	Quantity int
}

func NewPurchasesReport(quantities map[beverage.Beverage]int, totalMoneyEarned int64) PurchasesReport {
	copied := make(map[beverage.Beverage]int, len(quantities))
	for b, n := range quantities {
		copied[b] = n
	}
	return PurchasesReport{quantities: copied, totalMoneyEarned: totalMoneyEarned}
}

func (r PurchasesReport) Quantity(b beverage.Beverage) int { return r.quantities[b] }

func (r PurchasesReport) TotalMoneyEarned() int64 { return r.totalMoneyEarned }

func (r PurchasesReport) Quantities() map[beverage.Beverage]int {
	out := make(map[beverage.Beverage]int, len(r.quantities))
	for b, n := range r.quantities {
		out[b] = n
	}
	return out
}

func (r PurchasesReport) TotalBeverages() int {
	total := 0
	for _, n := range r.quantities {
		total += n
	}
	return total
}

func (r PurchasesReport) Lines() []Line {
	lines := make([]Line, 0, len(r.quantities))
	for b, n := range r.quantities {
		lines = append(lines, Line{Beverage: b, Quantity: n})
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Beverage.ID() < lines[j].Beverage.ID()
	})
	return lines
}

// Equal reports whether both snapshots hold the same counts and total.
func (r PurchasesReport) Equal(other PurchasesReport) bool {
	if r.totalMoneyEarned != other.totalMoneyEarned || len(r.quantities) != len(other.quantities) {
		return false
	}
	for b, n := range r.quantities {
		if other.quantities[b] != n {
			return false
		}
	}
	return true
}

type reportLineJSON struct {
	Beverage string `json:"beverage"`
	Quantity int    `json:"quantity"`
}

type reportJSON struct {
	Beverages        []reportLineJSON `json:"beverages"`
	TotalBeverages   int              `json:"total_beverages"`
	TotalMoneyEarned int64            `json:"total_money_earned"`
}

func (r PurchasesReport) MarshalJSON() ([]byte, error) {
	lines := r.Lines()
	out := reportJSON{
		Beverages:        make([]reportLineJSON, 0, len(lines)),
		TotalBeverages:   r.TotalBeverages(),
		TotalMoneyEarned: r.totalMoneyEarned,
	}
	for _, l := range lines {
		out.Beverages = append(out.Beverages, reportLineJSON{Beverage: l.Beverage.ID(), Quantity: l.Quantity})
	}
	return json.Marshal(out)
}
