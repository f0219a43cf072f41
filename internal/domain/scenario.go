package domain

import "github.com/shopspring/decimal"

// PriorityBucket is the coarse ranking category derived from (score, benefit).
type PriorityBucket string

const (
	PriorityHigh   PriorityBucket = "high"
	PriorityMedium PriorityBucket = "medium"
	PriorityLow    PriorityBucket = "low"
)

// PriorityRank gives the descending sort rank for a bucket (spec.md §4.5).
func PriorityRank(p PriorityBucket) int {
	switch p {
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	default:
		return 0
	}
}

// ComputePriority derives the priority bucket from a scenario's verdict.
func ComputePriority(score float64, benefit decimal.Decimal) PriorityBucket {
	hundredThousand := decimal.NewFromInt(100000)
	fiftyThousand := decimal.NewFromInt(50000)

	switch {
	case score > 0.8 && benefit.GreaterThan(hundredThousand):
		return PriorityHigh
	case score > 0.5 && benefit.GreaterThan(fiftyThousand):
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// ScenarioResult is one scenario's verdict over a customer.
type ScenarioResult struct {
	ProductName     string
	Score           float64
	ExpectedBenefit decimal.Decimal
	Reasons         []string
	Facts           map[string]interface{}
	Priority        PriorityBucket
}

// Recommendation is a ScenarioResult rendered into a customer-facing message.
type Recommendation struct {
	ProductName string
	Priority    PriorityBucket
	Score       float64
	Message     string
}

// Scenario is the pure contract shared by all ten product evaluators
// (spec.md §4.3). Implementations never fail fatally; on missing data they
// emit a zero-score degraded result.
type Scenario interface {
	// ProductName is the stable, customer-facing product identifier.
	ProductName() string
	// Analyze scores one customer given the shared, read-only inputs.
	Analyze(view CustomerView, agg Aggregates) ScenarioResult
}

// DegradedResult is the total fallback every scenario must be able to
// produce when its inputs are insufficient (spec.md §4.3).
func DegradedResult(productName string) ScenarioResult {
	return ScenarioResult{
		ProductName:     productName,
		Score:           0,
		ExpectedBenefit: decimal.Zero,
		Reasons:         []string{"нет данных"},
		Facts:           map[string]interface{}{},
		Priority:        PriorityLow,
	}
}
