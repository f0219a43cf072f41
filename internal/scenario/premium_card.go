package scenario

import (
	"fmt"

	"github.com/akniet/push-analytics/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	premiumCardSoftFloor   = 500000
	premiumCardTargetFloor = 800000
)

var premiumCategories = []domain.Category{
	domain.CategoryCafe, domain.CategoryJewelry, domain.CategoryGifts, domain.CategoryCosmetics,
}

// PremiumCard scores the premium card product (Table 4.3 row 2).
type PremiumCard struct{}

func (PremiumCard) ProductName() string { return "Премиальная карта" }

func (PremiumCard) Analyze(view domain.CustomerView, agg domain.Aggregates) domain.ScenarioResult {
	if len(view.Transactions) == 0 {
		return domain.DegradedResult(PremiumCard{}.ProductName())
	}

	balance := view.Customer.AvgMonthlyBalance
	premiumShare := categoryShare(agg, premiumCategories...)

	balanceScore := balanceBands(balance, premiumCardSoftFloor)
	statusScore := statusBonus(view.Customer.Status)
	premiumCatScore := categoryShareLadder(premiumShare)
	incomeScore := countBands(agg.SalaryInCount)
	activityScore := countBands(len(view.Transactions) / 10)

	score := weighted(
		[]float64{balanceScore, statusScore, premiumCatScore, incomeScore, activityScore},
		[]float64{0.40, 0.20, 0.20, 0.10, 0.10},
	)

	score *= balanceFloorMultiplier(balance, premiumCardSoftFloor)
	score = bonusMultiplier(score, balanceBands(balance, premiumCardTargetFloor) >= 1.0, 1.2)
	score = clamp01(score)

	monthCount := len(agg.MonthsInWindow)
	if monthCount == 0 {
		monthCount = 1
	}
	monthlySpend := agg.TotalSpend.Div(decimal.NewFromInt(int64(monthCount)))

	rate := cashbackRate(balance)
	benefit := rate.Mul(monthlySpend)

	reasons := []string{
		fmt.Sprintf("средний остаток %s ₸ открывает повышенный кешбэк", balance.StringFixed(2)),
	}
	if premiumShare > 0.15 {
		reasons = append(reasons, "заметная доля трат в премиальных категориях")
	}

	return domain.ScenarioResult{
		ProductName:     PremiumCard{}.ProductName(),
		Score:           score,
		ExpectedBenefit: benefit,
		Reasons:         reasons,
		Facts: map[string]interface{}{
			"balance_tier":   balanceTierLabel(balance),
			"cashback_rate":  rate,
			"cashback":       rate.Mul(monthlySpend),
			"monthly_spend":  monthlySpend,
		},
		Priority: domain.ComputePriority(score, benefit),
	}
}

func cashbackRate(balance decimal.Decimal) decimal.Decimal {
	b, _ := balance.Float64()
	switch {
	case b >= premiumCardTargetFloor:
		return decimal.NewFromFloat(0.04)
	case b >= premiumCardSoftFloor:
		return decimal.NewFromFloat(0.03)
	default:
		return decimal.NewFromFloat(0.02)
	}
}

func balanceTierLabel(balance decimal.Decimal) string {
	b, _ := balance.Float64()
	switch {
	case b >= premiumCardTargetFloor:
		return "выше целевого порога"
	case b >= premiumCardSoftFloor:
		return "выше базового порога"
	default:
		return "ниже базового порога"
	}
}
