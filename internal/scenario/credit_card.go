package scenario

import (
	"fmt"

	"github.com/akniet/push-analytics/internal/domain"
	"github.com/shopspring/decimal"
)

const creditCardFloor = 100000

// onlineCategories approximates the online-spend signal with the
// controlled-vocabulary categories that represent at-home/online purchases.
var onlineCategories = []domain.Category{domain.CategoryCinema, domain.CategoryHomeGames, domain.CategoryHomeMovies}

// CreditCard scores the everyday credit card product (Table 4.3 row 3).
type CreditCard struct{}

func (CreditCard) ProductName() string { return "Кредитная карта" }

func (CreditCard) Analyze(view domain.CustomerView, agg domain.Aggregates) domain.ScenarioResult {
	if len(view.Transactions) == 0 {
		return domain.DegradedResult(CreditCard{}.ProductName())
	}

	balance := view.Customer.AvgMonthlyBalance
	onlineSpend := agg.CategorySum(onlineCategories...)

	stabilityScore := balanceBands(balance, creditCardFloor)
	categoryMixScore := countBands(len(agg.ByCategorySum))
	onlineScore := categoryShareLadder(categoryShare(agg, onlineCategories...))
	regularityScore := agg.OverallRegularity()
	creditExpScore := countBands(agg.CreditActivityCount)

	score := weighted(
		[]float64{stabilityScore, categoryMixScore, onlineScore, regularityScore, creditExpScore},
		[]float64{0.25, 0.35, 0.20, 0.15, 0.05},
	)

	score *= balanceFloorMultiplier(balance, creditCardFloor)
	score = bonusMultiplier(score, categoryMixScore >= 1.0, 1.1)
	score = clamp01(score)

	onlineCashback := decimal.NewFromFloat(0.10).Mul(onlineSpend)
	benefit := decimal.NewFromFloat(0.05).Mul(balance).
		Add(onlineCashback).
		Add(decimal.NewFromFloat(0.02).Mul(balance))

	reasons := []string{
		fmt.Sprintf("покупки в %d разных категориях за период", len(agg.ByCategorySum)),
	}
	if !onlineSpend.IsZero() {
		reasons = append(reasons, "регулярные покупки дома и онлайн")
	}

	return domain.ScenarioResult{
		ProductName:     CreditCard{}.ProductName(),
		Score:           score,
		ExpectedBenefit: benefit,
		Reasons:         reasons,
		Facts: map[string]interface{}{
			"top_categories": agg.TopByAmount,
			"cashback":       onlineCashback,
		},
		Priority: domain.ComputePriority(score, benefit),
	}
}
