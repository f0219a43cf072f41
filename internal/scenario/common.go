package scenario

import "github.com/shopspring/decimal"

// balanceFloorMultiplier is the hard disqualifier applied when a customer's
// average balance sits below a scenario's floor: ×0.2 at zero balance,
// rising linearly toward ×0.6 just below the floor, ×1.0 at or above it
// (spec.md §4.3.x).
func balanceFloorMultiplier(balance decimal.Decimal, floor float64) float64 {
	b, _ := balance.Float64()
	if b >= floor || floor <= 0 {
		return 1.0
	}
	ratio := b / floor
	if ratio < 0 {
		ratio = 0
	}
	return 0.2 + 0.4*ratio
}

// statusDisqualifier applies the ×0.3 wrong-status penalty (spec.md §4.3.x)
// when allowed is non-empty and the customer's status is not in it.
func statusDisqualifier(status string, allowed map[string]bool) float64 {
	if len(allowed) == 0 || allowed[status] {
		return 1.0
	}
	return 0.3
}

// bonusMultiplier applies the strong-signal bonus (×1.1..1.2, capped at 1.0)
// when the triggering sub-score has saturated at 1.0 (spec.md §4.3.x).
func bonusMultiplier(score float64, triggered bool, factor float64) float64 {
	if !triggered {
		return score
	}
	boosted := score * factor
	if boosted > 1.0 {
		return 1.0
	}
	return boosted
}
