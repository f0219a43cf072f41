package scenario

import (
	"github.com/akniet/push-analytics/internal/domain"
	"github.com/shopspring/decimal"
)

const cashCreditFloor = 100000

// CashCredit scores the unsecured cash loan product (Table 4.3 row 10).
type CashCredit struct{}

func (CashCredit) ProductName() string { return "Кредит наличными" }

func (CashCredit) Analyze(view domain.CustomerView, agg domain.Aggregates) domain.ScenarioResult {
	if len(view.Transactions) == 0 && len(view.Transfers) == 0 {
		return domain.DegradedResult(CashCredit{}.ProductName())
	}

	balance := view.Customer.AvgMonthlyBalance

	stabilityScore := balanceBands(balance, cashCreditFloor)
	creditBehaviourScore := countBands(agg.CreditActivityCount)
	needScore := 1.0 - balanceBands(balance, cashCreditFloor)
	statusScore := statusBonus(view.Customer.Status)

	score := weighted(
		[]float64{stabilityScore, creditBehaviourScore, needScore, statusScore},
		[]float64{0.40, 0.30, 0.20, 0.10},
	)

	score *= balanceFloorMultiplier(balance, cashCreditFloor)
	score = bonusMultiplier(score, creditBehaviourScore >= 1.0, 1.1)
	score = clamp01(score)

	benefit := decimal.NewFromFloat(0.10).Mul(balance).
		Add(decimal.NewFromFloat(0.03).Mul(balance))

	limit := balance.Mul(decimal.NewFromInt(2))
	floorLimit := decimal.NewFromInt(cashCreditFloor)
	if limit.LessThan(floorLimit) {
		limit = floorLimit
	}

	reasons := []string{}
	if agg.CreditActivityCount > 0 {
		reasons = append(reasons, "регулярные платежи по кредитным обязательствам за период")
	} else {
		reasons = append(reasons, "доступен лимит наличными без залога и справок")
	}

	return domain.ScenarioResult{
		ProductName:     CashCredit{}.ProductName(),
		Score:           score,
		ExpectedBenefit: benefit,
		Reasons:         reasons,
		Facts: map[string]interface{}{
			"amount":                limit,
			"credit_activity_count": agg.CreditActivityCount,
			"projected_income":      benefit,
		},
		Priority: domain.ComputePriority(score, benefit),
	}
}
