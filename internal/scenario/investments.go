package scenario

import (
	"github.com/akniet/push-analytics/internal/domain"
	"github.com/shopspring/decimal"
)

const investmentsFloor = 50000

// Investments scores the entry-level brokerage product (Table 4.3 row 8).
type Investments struct{}

func (Investments) ProductName() string { return "Инвестиции" }

func (Investments) Analyze(view domain.CustomerView, agg domain.Aggregates) domain.ScenarioResult {
	balance := view.Customer.AvgMonthlyBalance
	if balance.IsZero() && agg.AccumulationCount == 0 {
		return domain.DegradedResult(Investments{}.ProductName())
	}

	readinessScore := balanceBands(balance, investmentsFloor)
	potentialScore := agg.RegularityOfTransferTypes(domain.TransferInvestIn)
	if potentialScore == 0 {
		potentialScore = countBands(agg.AccumulationCount) * 0.5
	}
	riskScore := countBands(agg.AccumulationCount)
	statusScore := statusBonus(view.Customer.Status)

	score := weighted(
		[]float64{readinessScore, potentialScore, riskScore, statusScore},
		[]float64{0.30, 0.35, 0.20, 0.15},
	)

	score *= balanceFloorMultiplier(balance, investmentsFloor)
	score = bonusMultiplier(score, potentialScore >= 1.0, 1.1)
	score = clamp01(score)

	benefit := decimal.NewFromFloat(0.05).Mul(balance).
		Add(decimal.NewFromFloat(0.015).Mul(balance))

	reasons := []string{}
	if agg.ByTransferType[domain.TransferInvestIn].IsPositive() {
		reasons = append(reasons, "уже есть опыт инвестирования — легко начать с малого")
	} else {
		reasons = append(reasons, "свободный остаток можно попробовать инвестировать без комиссии на старте")
	}

	return domain.ScenarioResult{
		ProductName:     Investments{}.ProductName(),
		Score:           score,
		ExpectedBenefit: benefit,
		Reasons:         reasons,
		Facts: map[string]interface{}{
			"entry_amount":     investmentsFloor,
			"projected_income": benefit,
		},
		Priority: domain.ComputePriority(score, benefit),
	}
}
