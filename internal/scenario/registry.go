package scenario

import "github.com/akniet/push-analytics/internal/domain"

// All returns the closed set of product scenarios evaluated for every
// customer (Table 4.3). Order is not significant; the ranker re-sorts.
func All() []domain.Scenario {
	return []domain.Scenario{
		TravelCard{},
		PremiumCard{},
		CreditCard{},
		CurrencyExchange{},
		SavingsDeposit{},
		AccumulationDeposit{},
		MultiCurrencyDeposit{},
		Investments{},
		GoldBars{},
		CashCredit{},
	}
}
