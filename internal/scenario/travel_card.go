package scenario

import (
	"fmt"

	"github.com/akniet/push-analytics/internal/domain"
	"github.com/shopspring/decimal"
)

const travelCardFloor = 100000

var travelCategories = []domain.Category{domain.CategoryTaxi, domain.CategoryHotels, domain.CategoryTravel}

// TravelCard scores the travel co-branded card product (Table 4.3 row 1).
type TravelCard struct{}

func (TravelCard) ProductName() string { return "Карта для путешествий" }

func (TravelCard) Analyze(view domain.CustomerView, agg domain.Aggregates) domain.ScenarioResult {
	if len(view.Transactions) == 0 && len(view.Transfers) == 0 {
		return domain.DegradedResult(TravelCard{}.ProductName())
	}

	balance := view.Customer.AvgMonthlyBalance
	travelSpend := agg.CategorySum(travelCategories...)
	travelShare := categoryShare(agg, travelCategories...)

	statusScore := statusBonus(view.Customer.Status)
	balanceScore := balanceBands(balance, travelCardFloor)
	shareScore := categoryShareLadder(travelShare)
	regularityScore := agg.RegularityOfCategories(travelCategories...)

	score := weighted(
		[]float64{statusScore, balanceScore, shareScore, regularityScore},
		[]float64{0.20, 0.25, 0.40, 0.15},
	)

	score *= balanceFloorMultiplier(balance, travelCardFloor)
	score = bonusMultiplier(score, shareScore >= 1.0, 1.15)
	score = clamp01(score)

	benefit := decimal.NewFromFloat(0.04).Mul(travelSpend).
		Add(decimal.NewFromFloat(0.02).Mul(balance))
	if benefit.IsNegative() {
		benefit = decimal.Zero
	}

	reasons := []string{}
	if !travelSpend.IsZero() {
		reasons = append(reasons, fmt.Sprintf("траты на такси и поездки за период: %s ₸", travelSpend.StringFixed(2)))
	}
	if regularityScore > 0.5 {
		reasons = append(reasons, "регулярные поездки почти каждый месяц")
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "потенциал для накопления кешбэка на поездках")
	}

	return domain.ScenarioResult{
		ProductName:     TravelCard{}.ProductName(),
		Score:           score,
		ExpectedBenefit: benefit,
		Reasons:         reasons,
		Facts: map[string]interface{}{
			"travel_spend": travelSpend,
			"cashback":     decimal.NewFromFloat(0.04).Mul(travelSpend),
		},
		Priority: domain.ComputePriority(score, benefit),
	}
}
