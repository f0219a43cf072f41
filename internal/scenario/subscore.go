// Package scenario implements the ten product evaluators of Table 4.3.
package scenario

import (
	"github.com/akniet/push-analytics/internal/domain"
	"github.com/shopspring/decimal"
)

// ladderStep is one (threshold, score) pair in a descending step ladder:
// the first step whose threshold is <= value wins.
type ladderStep struct {
	threshold float64
	score     float64
}

func stepLadder(value float64, steps []ladderStep) float64 {
	for _, s := range steps {
		if value >= s.threshold {
			return s.score
		}
	}
	return steps[len(steps)-1].score
}

// balanceBands is the shared six-band balance/stability step function,
// scaled relative to a scenario's balance floor (spec.md §4.3.x).
func balanceBands(balance decimal.Decimal, floor float64) float64 {
	b, _ := balance.Float64()
	steps := []ladderStep{
		{floor * 5, 1.0},
		{floor * 3, 0.85},
		{floor * 2, 0.7},
		{floor * 1.5, 0.5},
		{floor, 0.3},
		{0, 0.1},
	}
	return stepLadder(b, steps)
}

// categoryShareLadder is the shared five-step category-share ladder:
// share = categorySum / totalSpend (spec.md §4.3.x).
func categoryShareLadder(share float64) float64 {
	steps := []ladderStep{
		{0.30, 1.0},
		{0.20, 0.8},
		{0.10, 0.6},
		{0.02, 0.4},
		{0, 0.2},
	}
	return stepLadder(share, steps)
}

// countBands is the shared five-band count ladder used for
// accumulation-intent and credit-activity counts (spec.md §4.3.x).
func countBands(count int) float64 {
	steps := []ladderStep{
		{7, 1.0},
		{4, 0.7},
		{2, 0.5},
		{1, 0.3},
		{0, 0.1},
	}
	return stepLadder(float64(count), steps)
}

// categoryShare computes a category-sum's share of total spend, guarding
// against a zero-spend divide.
func categoryShare(agg domain.Aggregates, cats ...domain.Category) float64 {
	if agg.TotalSpend.IsZero() {
		return 0
	}
	sum := agg.CategorySum(cats...)
	share, _ := sum.Div(agg.TotalSpend).Float64()
	return share
}

// statusBonus is the shared status sub-score (spec.md §4.3.x).
func statusBonus(status domain.CustomerStatus) float64 {
	return domain.StatusBonus(status)
}

// weighted sums sub-scores against parallel weights; both slices must be
// the same length. Panics are impossible here (internal, fixed-arity
// call sites), matching the scenario contract's "total" guarantee.
func weighted(subscores []float64, weights []float64) float64 {
	sum := 0.0
	for i, w := range weights {
		sum += subscores[i] * w
	}
	return sum
}

// clamp01 bounds a score to [0, 1] after disqualifier/bonus multipliers.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
