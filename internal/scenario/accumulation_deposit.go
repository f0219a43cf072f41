package scenario

import (
	"github.com/akniet/push-analytics/internal/domain"
	"github.com/shopspring/decimal"
)

const accumulationDepositFloor = 200000

// AccumulationDeposit scores the regular-topup deposit product (Table 4.3 row 6).
type AccumulationDeposit struct{}

func (AccumulationDeposit) ProductName() string { return "Депозит Накопительный" }

func (AccumulationDeposit) Analyze(view domain.CustomerView, agg domain.Aggregates) domain.ScenarioResult {
	balance := view.Customer.AvgMonthlyBalance
	if balance.IsZero() && agg.AccumulationCount == 0 {
		return domain.DegradedResult(AccumulationDeposit{}.ProductName())
	}

	stabilityScore := balanceBands(balance, accumulationDepositFloor)
	accumulationScore := countBands(agg.AccumulationCount)
	depositRegularityScore := agg.RegularityOfTransferTypes(
		domain.TransferDepositTopupOut, domain.TransferDepositFXTopupOut, domain.TransferInvestIn)
	statusScore := statusBonus(view.Customer.Status)

	score := weighted(
		[]float64{stabilityScore, accumulationScore, depositRegularityScore, statusScore},
		[]float64{0.35, 0.40, 0.15, 0.10},
	)

	score *= balanceFloorMultiplier(balance, accumulationDepositFloor)
	score = bonusMultiplier(score, accumulationScore >= 1.0, 1.1)
	score = clamp01(score)

	benefit := decimal.NewFromFloat(0.155).Mul(balance).
		Add(decimal.NewFromFloat(0.03).Mul(balance))

	monthlyTopup := agg.ByTransferType[domain.TransferDepositTopupOut].
		Add(agg.ByTransferType[domain.TransferDepositFXTopupOut])

	reasons := []string{}
	if agg.AccumulationCount > 0 {
		reasons = append(reasons, "регулярные пополнения — удобно копить на цель")
	} else {
		reasons = append(reasons, "остаток позволяет начать копить на цель")
	}

	return domain.ScenarioResult{
		ProductName:     AccumulationDeposit{}.ProductName(),
		Score:           score,
		ExpectedBenefit: benefit,
		Reasons:         reasons,
		Facts: map[string]interface{}{
			"monthly_topup":    monthlyTopup,
			"projected_income": benefit,
		},
		Priority: domain.ComputePriority(score, benefit),
	}
}
