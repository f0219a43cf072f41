package notify

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const nbsp = " "

// formatMoneyKZT renders a KZT amount per the money(kzt) display rule:
// thousands grouped with U+00A0, fractional part omitted for integer
// amounts, and amounts at or above one million collapsed to "X,Y млн ₸".
func formatMoneyKZT(amount decimal.Decimal) string {
	million := decimal.NewFromInt(1000000)
	if amount.Abs().GreaterThanOrEqual(million) {
		millions := amount.Div(million).Round(1)
		return strings.Replace(millions.StringFixed(1), ".", ",", 1) + nbsp + "млн" + nbsp + "₸"
	}
	return groupThousands(amount.Round(0).StringFixed(0)) + nbsp + "₸"
}

// groupThousands inserts U+00A0 every three digits from the right,
// preserving a leading minus sign.
func groupThousands(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	out := strings.Join(groups, nbsp)
	if neg {
		out = "-" + out
	}
	return out
}

// formatPercent renders a [0,1] fraction as an integer percentage.
func formatPercent(fraction float64) string {
	return intString(int(fraction*100+0.5)) + "%"
}

func intString(v int) string {
	return decimal.NewFromInt(int64(v)).String()
}

var monthLocative = map[time.Month]string{
	time.January:   "в январе",
	time.February:  "в феврале",
	time.March:     "в марте",
	time.April:     "в апреле",
	time.May:       "в мае",
	time.June:      "в июне",
	time.July:      "в июле",
	time.August:    "в августе",
	time.September: "в сентябре",
	time.October:   "в октябре",
	time.November:  "в ноябре",
	time.December:  "в декабре",
}

// formatMonth returns the given month in Russian locative case.
func formatMonth(m time.Month) string {
	return monthLocative[m]
}
