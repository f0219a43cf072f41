package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func TestNewAggregates_TotalSpendAndCategorySums(t *testing.T) {
	view := CustomerView{
		Customer: Customer{Code: 1, Status: StatusSalary, AvgMonthlyBalance: dec(240000)},
		Transactions: []Transaction{
			{ClientCode: 1, Date: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), Category: CategoryTaxi, Amount: dec(30000), Currency: CurrencyKZT},
			{ClientCode: 1, Date: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), Category: CategoryTaxi, Amount: dec(30000), Currency: CurrencyKZT},
			{ClientCode: 1, Date: time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC), Category: CategoryHotels, Amount: dec(180000), Currency: CurrencyKZT},
			{ClientCode: 1, Date: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), Category: "Неизвестное", Amount: dec(5000), Currency: CurrencyKZT},
		},
	}

	agg := NewAggregates(view)

	want := dec(30000 + 30000 + 180000 + 5000)
	if !agg.TotalSpend.Equal(want) {
		t.Fatalf("TotalSpend = %s, want %s", agg.TotalSpend, want)
	}
	if !agg.ByCategorySum[CategoryTaxi].Equal(dec(60000)) {
		t.Errorf("Taxi sum = %s, want 60000", agg.ByCategorySum[CategoryTaxi])
	}
	if agg.ByCategoryCount[CategoryTaxi] != 2 {
		t.Errorf("Taxi count = %d, want 2", agg.ByCategoryCount[CategoryTaxi])
	}
	if !agg.ByCategorySum[CategoryOther].Equal(dec(5000)) {
		t.Errorf("unknown category not bucketed under Other, got %s", agg.ByCategorySum[CategoryOther])
	}
	if len(agg.MonthsInWindow) != 3 {
		t.Errorf("MonthsInWindow = %d, want 3", len(agg.MonthsInWindow))
	}
}

func TestNewAggregates_TransferDerivations(t *testing.T) {
	view := CustomerView{
		Transfers: []Transfer{
			{ClientCode: 1, Date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), Type: TransferFXBuy, Direction: DirectionOut, Amount: dec(400000)},
			{ClientCode: 1, Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), Type: TransferFXSell, Direction: DirectionIn, Amount: dec(400000)},
			{ClientCode: 1, Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Type: TransferFXBuy, Direction: DirectionOut, Amount: dec(400000)},
			{ClientCode: 1, Date: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), Type: TransferSalaryIn, Direction: DirectionIn, Amount: dec(320000)},
			{ClientCode: 1, Date: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), Type: TransferLoanPaymentOut, Direction: DirectionOut, Amount: dec(20000)},
		},
	}

	agg := NewAggregates(view)

	if agg.FXCount != 3 {
		t.Errorf("FXCount = %d, want 3", agg.FXCount)
	}
	if !agg.FXSum.Equal(dec(1200000)) {
		t.Errorf("FXSum = %s, want 1200000", agg.FXSum)
	}
	if agg.CreditActivityCount != 1 {
		t.Errorf("CreditActivityCount = %d, want 1", agg.CreditActivityCount)
	}
	if agg.SalaryInCount != 1 || !agg.SalaryInTotal.Equal(dec(320000)) {
		t.Errorf("salary aggregation wrong: count=%d total=%s", agg.SalaryInCount, agg.SalaryInTotal)
	}
	if !agg.InSum.Equal(dec(400000 + 320000)) {
		t.Errorf("InSum = %s, want %s", agg.InSum, dec(400000+320000))
	}
	if !agg.OutSum.Equal(dec(400000 + 400000 + 20000)) {
		t.Errorf("OutSum = %s, want %s", agg.OutSum, dec(820000))
	}

	regularity := agg.RegularityOfTransferTypes(TransferFXBuy, TransferFXSell)
	if regularity != 1.0 {
		t.Errorf("fx regularity = %f, want 1.0 (every month has an fx event)", regularity)
	}
}

func TestComputePriority(t *testing.T) {
	tests := []struct {
		name    string
		score   float64
		benefit decimal.Decimal
		want    PriorityBucket
	}{
		{"high", 0.9, dec(150000), PriorityHigh},
		{"medium by score", 0.6, dec(60000), PriorityMedium},
		{"low default", 0.3, dec(10000), PriorityLow},
		{"high score but low benefit falls to medium or low", 0.9, dec(10000), PriorityLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePriority(tt.score, tt.benefit)
			if got != tt.want {
				t.Errorf("ComputePriority(%f, %s) = %s, want %s", tt.score, tt.benefit, got, tt.want)
			}
		})
	}
}
