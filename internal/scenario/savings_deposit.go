package scenario

import (
	"github.com/akniet/push-analytics/internal/domain"
	"github.com/shopspring/decimal"
)

const savingsDepositFloor = 1000000

// SavingsDeposit scores the fixed savings deposit product (Table 4.3 row 5).
type SavingsDeposit struct{}

func (SavingsDeposit) ProductName() string { return "Депозит Сберегательный" }

func (SavingsDeposit) Analyze(view domain.CustomerView, agg domain.Aggregates) domain.ScenarioResult {
	balance := view.Customer.AvgMonthlyBalance
	if balance.IsZero() {
		return domain.DegradedResult(SavingsDeposit{}.ProductName())
	}

	stabilityScore := balanceBands(balance, savingsDepositFloor)

	noWithdrawals := agg.ByTransferType[domain.TransferDepositWithdrawIn].IsZero() &&
		agg.ByTransferType[domain.TransferDepositFXWithdrawIn].IsZero()
	freezeReadinessScore := 0.3
	if noWithdrawals {
		freezeReadinessScore = 1.0
	}

	savingBehaviourScore := countBands(agg.AccumulationCount)
	statusScore := statusBonus(view.Customer.Status)

	score := weighted(
		[]float64{stabilityScore, freezeReadinessScore, savingBehaviourScore, statusScore},
		[]float64{0.50, 0.30, 0.15, 0.05},
	)

	score *= balanceFloorMultiplier(balance, savingsDepositFloor)
	score = bonusMultiplier(score, noWithdrawals && stabilityScore >= 1.0, 1.1)
	score = clamp01(score)

	benefit := decimal.NewFromFloat(0.165).Mul(balance).
		Add(decimal.NewFromFloat(0.03).Mul(balance))

	reasons := []string{"стабильный остаток без снятий — подходит для срочного вклада"}
	if !noWithdrawals {
		reasons = []string{"есть снятия, но остаток позволяет открыть вклад на часть суммы"}
	}

	return domain.ScenarioResult{
		ProductName:     SavingsDeposit{}.ProductName(),
		Score:           score,
		ExpectedBenefit: benefit,
		Reasons:         reasons,
		Facts: map[string]interface{}{
			"rate":             decimal.NewFromFloat(0.165),
			"projected_income": benefit,
		},
		Priority: domain.ComputePriority(score, benefit),
	}
}
