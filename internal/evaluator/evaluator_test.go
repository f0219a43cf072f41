package evaluator

import (
	"context"
	"testing"
	"time"

	"github.com/akniet/push-analytics/internal/domain"
	"github.com/shopspring/decimal"
)

type fakeScenario struct {
	name  string
	delay time.Duration
	panic bool
}

func (f fakeScenario) ProductName() string { return f.name }

func (f fakeScenario) Analyze(view domain.CustomerView, agg domain.Aggregates) domain.ScenarioResult {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.panic {
		panic("boom")
	}
	return domain.ScenarioResult{
		ProductName:     f.name,
		Score:           0.9,
		ExpectedBenefit: decimal.NewFromInt(1000),
		Priority:        domain.PriorityHigh,
	}
}

func TestRun_AllComplete(t *testing.T) {
	e := New([]domain.Scenario{
		fakeScenario{name: "a"},
		fakeScenario{name: "b"},
		fakeScenario{name: "c"},
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	results := e.Run(ctx, domain.CustomerView{}, domain.Aggregates{})
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
}

func TestRun_PanicIsDropped(t *testing.T) {
	e := New([]domain.Scenario{
		fakeScenario{name: "ok"},
		fakeScenario{name: "broken", panic: true},
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	results := e.Run(ctx, domain.CustomerView{}, domain.Aggregates{})
	if len(results) != 1 {
		t.Fatalf("expected 1 surviving result, got %d", len(results))
	}
	if results[0].ProductName != "ok" {
		t.Fatalf("expected surviving result to be 'ok', got %q", results[0].ProductName)
	}
}

func TestRun_DeadlineStarvation(t *testing.T) {
	e := New([]domain.Scenario{
		fakeScenario{name: "slow", delay: 500 * time.Millisecond},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	results := e.Run(ctx, domain.CustomerView{}, domain.Aggregates{})
	if len(results) != 0 {
		t.Fatalf("expected empty results under deadline starvation, got %d", len(results))
	}
}
