package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// TopCategory is one entry in a top-N-by-amount or top-N-by-count ranking.
type TopCategory struct {
	Category Category
	Amount   decimal.Decimal
	Count    int
}

// TopCategoryCount is the number of ranked categories Aggregates retains.
const TopCategoryCount = 5

// Aggregates are immutable, single-pass derivations over a CustomerView.
// Construction is O(T+U); no scenario may trigger a second pass over the
// raw transaction/transfer slices (spec.md §4.2).
type Aggregates struct {
	TotalSpend      decimal.Decimal
	ByCategorySum   map[Category]decimal.Decimal
	ByCategoryCount map[Category]int
	TopByAmount     []TopCategory
	TopByCount      []TopCategory

	// MonthlySpend and MonthlyDeposit are keyed by "yyyy-mm".
	MonthlySpend   map[string]decimal.Decimal
	MonthlyDeposit map[string]decimal.Decimal

	ByTransferType map[TransferType]decimal.Decimal
	InSum          decimal.Decimal
	OutSum         decimal.Decimal

	FXCount int
	FXSum   decimal.Decimal

	AccumulationCount   int
	CreditActivityCount int

	SalaryInTotal decimal.Decimal
	SalaryInCount int

	// MonthsInWindow is the distinct set of "yyyy-mm" labels observed across
	// transactions and transfers; used as the regularity denominator.
	MonthsInWindow map[string]bool

	// CategoryMonths and TransferTypeMonths record, per category/type, the
	// set of months containing at least one matching event. Scenarios use
	// these (via RegularityOf) instead of re-scanning the raw rows.
	CategoryMonths     map[Category]map[string]bool
	TransferTypeMonths map[TransferType]map[string]bool
}

// NewAggregates computes all derived fields in one pass over transactions
// and one pass over transfers.
func NewAggregates(view CustomerView) Aggregates {
	a := Aggregates{
		TotalSpend:      decimal.Zero,
		ByCategorySum:   make(map[Category]decimal.Decimal),
		ByCategoryCount: make(map[Category]int),
		MonthlySpend:    make(map[string]decimal.Decimal),
		MonthlyDeposit:  make(map[string]decimal.Decimal),
		ByTransferType:  make(map[TransferType]decimal.Decimal),
		InSum:           decimal.Zero,
		OutSum:          decimal.Zero,
		FXSum:           decimal.Zero,
		SalaryInTotal:   decimal.Zero,
		MonthsInWindow:  make(map[string]bool),

		CategoryMonths:     make(map[Category]map[string]bool),
		TransferTypeMonths: make(map[TransferType]map[string]bool),
	}

	for _, tx := range view.Transactions {
		cat := NormalizedCategory(tx.Category)
		a.TotalSpend = a.TotalSpend.Add(tx.Amount)
		a.ByCategorySum[cat] = a.ByCategorySum[cat].Add(tx.Amount)
		a.ByCategoryCount[cat]++

		label := monthLabel(tx.Date)
		a.MonthlySpend[label] = a.MonthlySpend[label].Add(tx.Amount)
		a.MonthsInWindow[label] = true

		if a.CategoryMonths[cat] == nil {
			a.CategoryMonths[cat] = make(map[string]bool)
		}
		a.CategoryMonths[cat][label] = true
	}

	for _, tr := range view.Transfers {
		a.ByTransferType[tr.Type] = a.ByTransferType[tr.Type].Add(tr.Amount)

		trLabel := monthLabel(tr.Date)
		if a.TransferTypeMonths[tr.Type] == nil {
			a.TransferTypeMonths[tr.Type] = make(map[string]bool)
		}
		a.TransferTypeMonths[tr.Type][trLabel] = true

		if tr.Direction == DirectionIn {
			a.InSum = a.InSum.Add(tr.Amount)
		} else {
			a.OutSum = a.OutSum.Add(tr.Amount)
		}

		if tr.Type.IsFX() {
			a.FXCount++
			a.FXSum = a.FXSum.Add(tr.Amount)
		}

		if tr.Type.IsAccumulationIntent() {
			a.AccumulationCount++
		}
		if tr.Type.IsCreditActivity() {
			a.CreditActivityCount++
		}

		if tr.Type == TransferSalaryIn {
			a.SalaryInTotal = a.SalaryInTotal.Add(tr.Amount)
			a.SalaryInCount++
		}

		if tr.Direction == DirectionIn {
			label := monthLabel(tr.Date)
			a.MonthlyDeposit[label] = a.MonthlyDeposit[label].Add(tr.Amount)
		}

		a.MonthsInWindow[monthLabel(tr.Date)] = true
	}

	a.TopByAmount = topCategories(a.ByCategorySum, a.ByCategoryCount, byAmountDesc)
	a.TopByCount = topCategories(a.ByCategorySum, a.ByCategoryCount, byCountDesc)

	return a
}

// RegularityOf returns the fraction of months in the window that appear in
// the given set of "yyyy-mm" labels (the months with a matching event).
func (a Aggregates) RegularityOf(months map[string]bool) float64 {
	if len(a.MonthsInWindow) == 0 {
		return 0
	}
	matched := 0
	for m := range a.MonthsInWindow {
		if months[m] {
			matched++
		}
	}
	return float64(matched) / float64(len(a.MonthsInWindow))
}

// RegularityOfCategories returns the fraction of months in the window
// containing a transaction in any of the given categories.
func (a Aggregates) RegularityOfCategories(cats ...Category) float64 {
	union := make(map[string]bool)
	for _, cat := range cats {
		for m := range a.CategoryMonths[cat] {
			union[m] = true
		}
	}
	return a.RegularityOf(union)
}

// RegularityOfTransferTypes returns the fraction of months in the window
// containing a transfer of any of the given types.
func (a Aggregates) RegularityOfTransferTypes(types ...TransferType) float64 {
	union := make(map[string]bool)
	for _, t := range types {
		for m := range a.TransferTypeMonths[t] {
			union[m] = true
		}
	}
	return a.RegularityOf(union)
}

// windowMonths is the nominal month count of the default 90-day analysis
// window, used as the denominator for overall (not category-scoped)
// regularity sub-scores.
const windowMonths = 3

// OverallRegularity returns the fraction of the nominal window months that
// contain at least one transaction or transfer.
func (a Aggregates) OverallRegularity() float64 {
	f := float64(len(a.MonthsInWindow)) / windowMonths
	if f > 1 {
		return 1
	}
	return f
}

// CategorySum sums amounts across the given categories.
func (a Aggregates) CategorySum(cats ...Category) decimal.Decimal {
	sum := decimal.Zero
	for _, cat := range cats {
		sum = sum.Add(a.ByCategorySum[cat])
	}
	return sum
}

func monthLabel(t time.Time) string {
	return t.Format("2006-01")
}

// topCategories ranks categories by the given comparator and returns the
// top TopCategoryCount entries.
func topCategories(sums map[Category]decimal.Decimal, counts map[Category]int, less func(a, b TopCategory) bool) []TopCategory {
	entries := make([]TopCategory, 0, len(sums))
	for cat, sum := range sums {
		entries = append(entries, TopCategory{Category: cat, Amount: sum, Count: counts[cat]})
	}
	sort.Slice(entries, func(i, j int) bool { return less(entries[i], entries[j]) })
	if len(entries) > TopCategoryCount {
		entries = entries[:TopCategoryCount]
	}
	return entries
}

func byAmountDesc(a, b TopCategory) bool {
	return a.Amount.GreaterThan(b.Amount)
}

func byCountDesc(a, b TopCategory) bool {
	return a.Count > b.Count
}
