package machine

// Outcome tells how a dispense request ended.
type Outcome string

const (
	// OutcomeServed: paid and served.
	OutcomeServed Outcome = "served"
	// OutcomeRejected: not enough money; nothing was deposited.
	OutcomeRejected Outcome = "rejected"
	// OutcomeShortage: paid, out of stock, refunded and notified.
	OutcomeShortage Outcome = "shortage"
	// OutcomeInvalid: the request named something the catalog cannot price.
	OutcomeInvalid Outcome = "invalid"
)

// Result summarises what the observers of a dispense call were told.
type Result struct {
	Outcome Outcome
	// Missing is the shortfall in cents when Outcome is OutcomeRejected.
	Missing int64
	// Err is set when a step failed without changing the outcome, e.g. a refused refund.
	Err error
}
