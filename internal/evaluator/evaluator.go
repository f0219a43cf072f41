// Package evaluator fans out the product scenarios over one customer's
// aggregated data under a wall-clock deadline.
package evaluator

import (
	"context"
	"sync"
	"time"

	"github.com/akniet/push-analytics/internal/domain"
	"github.com/rs/zerolog/log"
)

// Default deadlines for the two request shapes the API exposes.
const (
	FullDeadline = 30 * time.Second
	FastDeadline = 15 * time.Second
)

// Evaluator runs a fixed set of scenarios against one customer's data.
type Evaluator struct {
	scenarios []domain.Scenario
}

// New builds an Evaluator over the given scenario set. Callers pass the
// full ten-scenario registry or the fast five-scenario subset.
func New(scenarios []domain.Scenario) *Evaluator {
	return &Evaluator{scenarios: scenarios}
}

// Run materializes no new state itself: the caller supplies the CustomerView
// and Aggregates already built once for this customer. It launches one
// goroutine per scenario, collects whichever results finish before ctx is
// done, and recovers from a per-scenario panic without aborting the others.
func (e *Evaluator) Run(ctx context.Context, view domain.CustomerView, agg domain.Aggregates) []domain.ScenarioResult {
	results := make(chan domain.ScenarioResult, len(e.scenarios))
	var wg sync.WaitGroup

	for _, s := range e.scenarios {
		select {
		case <-ctx.Done():
			log.Warn().
				Int("client_code", view.Customer.Code).
				Msg("evaluator deadline exceeded before all scenarios launched")
			continue
		default:
		}

		wg.Add(1)
		go func(s domain.Scenario) {
			defer wg.Done()
			result, ok := runScenario(s, view, agg)
			if !ok {
				return
			}
			select {
			case results <- result:
			case <-ctx.Done():
			}
		}(s)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]domain.ScenarioResult, 0, len(e.scenarios))
	for {
		select {
		case r, open := <-results:
			if !open {
				return collected
			}
			collected = append(collected, r)
		case <-ctx.Done():
			return collected
		}
	}
}

// runScenario invokes one scenario, converting a panic into a dropped
// result instead of crashing the whole evaluation run.
func runScenario(s domain.Scenario, view domain.CustomerView, agg domain.Aggregates) (result domain.ScenarioResult, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("recovered", r).
				Str("product", s.ProductName()).
				Msg("scenario panicked, dropping result")
			ok = false
		}
	}()
	return s.Analyze(view, agg), true
}
