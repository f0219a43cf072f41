package scenario

import (
	"fmt"

	"github.com/akniet/push-analytics/internal/domain"
	"github.com/shopspring/decimal"
)

const currencyExchangeFloor = 50000

// CurrencyExchange scores the FX product (Table 4.3 row 4).
type CurrencyExchange struct{}

func (CurrencyExchange) ProductName() string { return "Обмен валют" }

func (CurrencyExchange) Analyze(view domain.CustomerView, agg domain.Aggregates) domain.ScenarioResult {
	if agg.FXCount == 0 && len(view.Transfers) == 0 {
		return domain.DegradedResult(CurrencyExchange{}.ProductName())
	}

	balance := view.Customer.AvgMonthlyBalance

	stabilityScore := balanceBands(balance, currencyExchangeFloor)
	fxActivityScore := countBands(agg.FXCount)
	regularityScore := agg.RegularityOfTransferTypes(domain.TransferFXBuy, domain.TransferFXSell)
	amountScore := balanceBands(agg.FXSum, currencyExchangeFloor)

	score := weighted(
		[]float64{stabilityScore, fxActivityScore, regularityScore, amountScore},
		[]float64{0.20, 0.50, 0.20, 0.10},
	)

	score *= balanceFloorMultiplier(balance, currencyExchangeFloor)
	score = bonusMultiplier(score, fxActivityScore >= 1.0, 1.15)
	score = clamp01(score)

	benefit := decimal.NewFromFloat(0.005).Mul(balance).
		Add(decimal.NewFromFloat(0.01).Mul(agg.FXSum))

	reasons := []string{}
	if agg.FXCount > 0 {
		reasons = append(reasons, fmt.Sprintf("%d валютных операций на сумму %s ₸", agg.FXCount, agg.FXSum.StringFixed(2)))
	} else {
		reasons = append(reasons, "потенциал для выгодного обмена валют")
	}

	return domain.ScenarioResult{
		ProductName:     CurrencyExchange{}.ProductName(),
		Score:           score,
		ExpectedBenefit: benefit,
		Reasons:         reasons,
		Facts: map[string]interface{}{
			"fx_sum":   agg.FXSum,
			"fx_count": agg.FXCount,
		},
		Priority: domain.ComputePriority(score, benefit),
	}
}
