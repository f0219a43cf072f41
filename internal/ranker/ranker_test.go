package ranker

import (
	"testing"

	"github.com/akniet/push-analytics/internal/domain"
	"github.com/shopspring/decimal"
)

func result(name string, priority domain.PriorityBucket, score float64, benefit int64) domain.ScenarioResult {
	return domain.ScenarioResult{
		ProductName:     name,
		Priority:        priority,
		Score:           score,
		ExpectedBenefit: decimal.NewFromInt(benefit),
	}
}

func TestRank_OrdersByPriorityThenScore(t *testing.T) {
	in := []domain.ScenarioResult{
		result("low-one", domain.PriorityLow, 0.9, 1000),
		result("high-one", domain.PriorityHigh, 0.85, 200000),
		result("medium-one", domain.PriorityMedium, 0.6, 60000),
	}

	out := Rank(in)

	if out[0].ProductName != "high-one" || out[1].ProductName != "medium-one" || out[2].ProductName != "low-one" {
		t.Fatalf("unexpected order: %+v", out)
	}
}

func TestRank_TieBreaksOnBenefitThenName(t *testing.T) {
	in := []domain.ScenarioResult{
		result("zeta", domain.PriorityHigh, 0.9, 100001),
		result("alpha", domain.PriorityHigh, 0.9, 200000),
		result("beta", domain.PriorityHigh, 0.9, 200000),
	}

	out := Rank(in)

	if out[0].ProductName != "alpha" || out[1].ProductName != "beta" || out[2].ProductName != "zeta" {
		t.Fatalf("unexpected tie-break order: %+v", out)
	}
}

func TestTop_EmptyInput(t *testing.T) {
	_, ok := Top(nil)
	if ok {
		t.Fatal("expected ok=false for empty input")
	}
}
