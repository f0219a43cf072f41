package notify

import (
	"strings"
	"testing"

	"github.com/akniet/push-analytics/internal/domain"
	"github.com/shopspring/decimal"
)

func TestRender_TravelCardSubstitutesFacts(t *testing.T) {
	result := domain.ScenarioResult{
		ProductName: "Карта для путешествий",
		Score:       0.9,
		Priority:    domain.PriorityHigh,
		Facts: map[string]interface{}{
			"travel_spend": decimal.NewFromInt(45000),
			"cashback":     decimal.NewFromInt(1800),
		},
	}

	rec := Render(result, "Айгерим")

	if !strings.Contains(rec.Message, "Айгерим") {
		t.Fatalf("expected customer name in message, got %q", rec.Message)
	}
	if !strings.Contains(rec.Message, "₸") {
		t.Fatalf("expected currency glyph in message, got %q", rec.Message)
	}
	runeLen := len([]rune(rec.Message))
	if runeLen < 50 || runeLen > 220 {
		t.Fatalf("expected message within TOV length window, got %d runes: %q", runeLen, rec.Message)
	}
}

func TestRender_UnknownProductFallsBackToGeneric(t *testing.T) {
	result := domain.ScenarioResult{
		ProductName: "Совершенно новый продукт",
		Score:       0.5,
		Priority:    domain.PriorityLow,
		Facts:       map[string]interface{}{},
	}

	rec := Render(result, "Данияр")

	if !strings.Contains(rec.Message, "Данияр") {
		t.Fatalf("expected customer name in fallback message, got %q", rec.Message)
	}
}

func TestRender_MissingFactUsesDefault(t *testing.T) {
	result := domain.ScenarioResult{
		ProductName: "Золотые слитки",
		Score:       0.7,
		Priority:    domain.PriorityMedium,
		Facts:       map[string]interface{}{},
	}

	rec := Render(result, "Марат")
	if rec.Message == "" {
		t.Fatal("expected non-empty rendered message with defaulted facts")
	}
}
