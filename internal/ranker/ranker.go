// Package ranker orders scenario results by priority and score.
package ranker

import (
	"sort"

	"github.com/akniet/push-analytics/internal/domain"
)

// Rank sorts results descending by (priorityRank, score), tie-breaking on
// expected benefit (higher first) and then on stable product-name order
// (spec.md §4.5). The input slice is sorted in place and returned.
func Rank(results []domain.ScenarioResult) []domain.ScenarioResult {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]

		ra, rb := domain.PriorityRank(a.Priority), domain.PriorityRank(b.Priority)
		if ra != rb {
			return ra > rb
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.ExpectedBenefit.Equal(b.ExpectedBenefit) {
			return a.ExpectedBenefit.GreaterThan(b.ExpectedBenefit)
		}
		return a.ProductName < b.ProductName
	})
	return results
}

// Top returns the single best-ranked result, or false if results is empty.
func Top(results []domain.ScenarioResult) (domain.ScenarioResult, bool) {
	ranked := Rank(results)
	if len(ranked) == 0 {
		return domain.ScenarioResult{}, false
	}
	return ranked[0], true
}

// TopN returns up to n best-ranked results, fewer if results is shorter.
func TopN(results []domain.ScenarioResult, n int) []domain.ScenarioResult {
	ranked := Rank(results)
	if len(ranked) < n {
		return ranked
	}
	return ranked[:n]
}
