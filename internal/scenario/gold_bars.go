package scenario

import (
	"github.com/akniet/push-analytics/internal/domain"
	"github.com/shopspring/decimal"
)

const goldBarsFloor = 500000

// GoldBars scores the physical gold bar product (Table 4.3 row 9).
type GoldBars struct{}

func (GoldBars) ProductName() string { return "Золотые слитки" }

func (GoldBars) Analyze(view domain.CustomerView, agg domain.Aggregates) domain.ScenarioResult {
	balance := view.Customer.AvgMonthlyBalance
	if balance.IsZero() {
		return domain.DegradedResult(GoldBars{}.ProductName())
	}

	readinessScore := balanceBands(balance, goldBarsFloor)
	diversificationScore := countBands(agg.FXCount)
	longTermScore := agg.RegularityOfTransferTypes(
		domain.TransferDepositTopupOut, domain.TransferDepositFXTopupOut)
	statusScore := statusBonus(view.Customer.Status)

	score := weighted(
		[]float64{readinessScore, diversificationScore, longTermScore, statusScore},
		[]float64{0.40, 0.30, 0.20, 0.10},
	)

	score *= balanceFloorMultiplier(balance, goldBarsFloor)
	score = bonusMultiplier(score, readinessScore >= 1.0, 1.1)
	score = clamp01(score)

	benefit := decimal.NewFromFloat(0.035).Mul(balance).Mul(decimal.NewFromFloat(score))

	reasons := []string{"крупный стабильный остаток — подходит для защитного актива"}
	if longTermScore > 0.5 {
		reasons = append(reasons, "регулярные накопления говорят о долгосрочном горизонте")
	}

	return domain.ScenarioResult{
		ProductName:     GoldBars{}.ProductName(),
		Score:           score,
		ExpectedBenefit: benefit,
		Reasons:         reasons,
		Facts: map[string]interface{}{
			"diversification_share": diversificationScore,
			"balance":               balance,
			"projected_income":      benefit,
		},
		Priority: domain.ComputePriority(score, benefit),
	}
}
