package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/akniet/push-analytics/internal/domain"
	"github.com/shopspring/decimal"
)

// Render picks the template for result.ProductName, fills its placeholders
// from result.Facts (falling back to a static default for any missing
// required key), substitutes into the body, and runs the output through
// the TOV validator (spec.md §4.7).
func Render(result domain.ScenarioResult, customerName string) domain.Recommendation {
	tmpl := byProductName(result.ProductName)

	values := map[string]string{"name": customerName}
	for _, ph := range tmpl.Placeholders {
		values[ph.Key] = renderPlaceholder(ph, result.Facts[ph.Key])
	}

	body := tmpl.Body
	for key, v := range values {
		body = strings.ReplaceAll(body, "{"+key+"}", v)
	}

	body = Validate(body)

	return domain.Recommendation{
		ProductName: result.ProductName,
		Priority:    result.Priority,
		Score:       result.Score,
		Message:     body,
	}
}

// renderPlaceholder converts one fact value to its display string per the
// placeholder's declared type, substituting a static default when the fact
// is absent.
func renderPlaceholder(ph Placeholder, value interface{}) string {
	if value == nil {
		return defaultFor(ph)
	}

	switch ph.Type {
	case PlaceholderMoney:
		return formatMoneyKZT(toDecimal(value))
	case PlaceholderPercent:
		return formatPercent(toFraction(value))
	case PlaceholderMonth:
		if m, ok := value.(time.Month); ok {
			return formatMonth(m)
		}
		return formatMonth(time.Now().Month())
	default: // PlaceholderPlain
		return toPlainString(value)
	}
}

func defaultFor(ph Placeholder) string {
	switch ph.Type {
	case PlaceholderMoney:
		return formatMoneyKZT(decimal.Zero)
	case PlaceholderPercent:
		return formatPercent(0)
	case PlaceholderMonth:
		return formatMonth(time.Now().Month())
	default:
		return "подходящих категориях"
	}
}

func toDecimal(value interface{}) decimal.Decimal {
	switch v := value.(type) {
	case decimal.Decimal:
		return v
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case float64:
		return decimal.NewFromFloat(v)
	default:
		return decimal.Zero
	}
}

func toFraction(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case decimal.Decimal:
		f, _ := v.Float64()
		return f
	default:
		return 0
	}
}

func toPlainString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case domain.Category:
		return string(v)
	case int:
		return fmt.Sprintf("%d", v)
	case []domain.TopCategory:
		names := make([]string, 0, len(v))
		for _, c := range v {
			names = append(names, string(c.Category))
		}
		return strings.Join(names, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}
