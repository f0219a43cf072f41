package scenario

import (
	"github.com/akniet/push-analytics/internal/domain"
	"github.com/shopspring/decimal"
)

const multiCurrencyDepositFloor = 500000

// MultiCurrencyDeposit scores the multi-currency deposit product (Table 4.3 row 7).
type MultiCurrencyDeposit struct{}

func (MultiCurrencyDeposit) ProductName() string { return "Депозит Мультивалютный" }

func (MultiCurrencyDeposit) Analyze(view domain.CustomerView, agg domain.Aggregates) domain.ScenarioResult {
	balance := view.Customer.AvgMonthlyBalance
	if balance.IsZero() && agg.FXCount == 0 {
		return domain.DegradedResult(MultiCurrencyDeposit{}.ProductName())
	}

	stabilityScore := balanceBands(balance, multiCurrencyDepositFloor)
	fxActivityScore := countBands(agg.FXCount)
	rebalancingNeedScore := countBands(agg.FXCount * 2)
	savingScore := countBands(agg.AccumulationCount)

	score := weighted(
		[]float64{stabilityScore, fxActivityScore, rebalancingNeedScore, savingScore},
		[]float64{0.40, 0.35, 0.15, 0.10},
	)

	score *= balanceFloorMultiplier(balance, multiCurrencyDepositFloor)
	score = bonusMultiplier(score, fxActivityScore >= 1.0, 1.1)
	score = clamp01(score)

	benefit := decimal.NewFromFloat(0.145).Mul(balance).
		Add(decimal.NewFromFloat(0.03).Mul(balance))

	reasons := []string{}
	if agg.FXCount > 0 {
		reasons = append(reasons, "валютная активность — удобно держать средства в нескольких валютах")
	} else {
		reasons = append(reasons, "остаток позволяет диверсифицировать по валютам")
	}

	return domain.ScenarioResult{
		ProductName:     MultiCurrencyDeposit{}.ProductName(),
		Score:           score,
		ExpectedBenefit: benefit,
		Reasons:         reasons,
		Facts: map[string]interface{}{
			"currencies":       "USD, EUR, RUB",
			"projected_income": benefit,
		},
		Priority: domain.ComputePriority(score, benefit),
	}
}
