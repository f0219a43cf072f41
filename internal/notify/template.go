// Package notify renders a ScenarioResult into a customer-facing push
// notification and enforces the tone-of-voice contract on the result.
package notify

import "github.com/rs/zerolog/log"

// PlaceholderType is the display rule applied when substituting a
// placeholder's value into a template body (spec.md §4.6).
type PlaceholderType int

const (
	PlaceholderMoney PlaceholderType = iota
	PlaceholderMonth
	PlaceholderPercent
	PlaceholderPlain
)

// Placeholder is one named slot in a template body.
type Placeholder struct {
	Key      string
	Type     PlaceholderType
	Required bool
}

// Template is a closed, fixed record: a template-id, its body, and the
// placeholders it substitutes (Table 4.6).
type Template struct {
	ID           string
	ProductName  string
	Body         string
	Placeholders []Placeholder
}

// registry is the closed template set, grounded on the product catalogue's
// message templates. Every product name routes to exactly one id; any
// unmatched product name falls back to genericFallback.
var registry = []Template{
	{
		ID:          "travel_card",
		ProductName: "Карта для путешествий",
		Body:        "{name}, {month} вы потратили на такси и поездки {travel_spend} — с картой для путешествий вернули бы {cashback} кешбэком. Оформить карту?",
		Placeholders: []Placeholder{
			{Key: "month", Type: PlaceholderMonth, Required: true},
			{Key: "travel_spend", Type: PlaceholderMoney, Required: true},
			{Key: "cashback", Type: PlaceholderMoney, Required: true},
		},
	},
	{
		ID:          "premium_card",
		ProductName: "Премиальная карта",
		Body:        "{name}, ваш остаток {balance_tier} — с премиальной картой кешбэк {cashback_rate} вернёт вам {cashback}. Подключить карту?",
		Placeholders: []Placeholder{
			{Key: "balance_tier", Type: PlaceholderPlain, Required: true},
			{Key: "cashback_rate", Type: PlaceholderPercent, Required: true},
			{Key: "cashback", Type: PlaceholderMoney, Required: true},
		},
	},
	{
		ID:          "credit_card",
		ProductName: "Кредитная карта",
		Body:        "{name}, ваши топ-категории — {top_categories}. Кредитная карта вернёт {cashback} кешбэком. Оформить карту?",
		Placeholders: []Placeholder{
			{Key: "top_categories", Type: PlaceholderPlain, Required: true},
			{Key: "cashback", Type: PlaceholderMoney, Required: true},
		},
	},
	{
		ID:          "currency_exchange",
		ProductName: "Обмен валют",
		Body:        "{name}, у вас {fx_count} валютных операций на сумму {fx_sum}. В приложении выгодный курс без очередей. Настроить обмен?",
		Placeholders: []Placeholder{
			{Key: "fx_count", Type: PlaceholderPlain, Required: true},
			{Key: "fx_sum", Type: PlaceholderMoney, Required: true},
		},
	},
	{
		ID:          "savings_deposit",
		ProductName: "Депозит Сберегательный",
		Body:        "{name}, свободные средства могут работать: вклад под {rate} принесёт {projected_income} за год. Открыть вклад?",
		Placeholders: []Placeholder{
			{Key: "rate", Type: PlaceholderPercent, Required: true},
			{Key: "projected_income", Type: PlaceholderMoney, Required: true},
		},
	},
	{
		ID:          "accumulation_deposit",
		ProductName: "Депозит Накопительный",
		Body:        "{name}, с пополнением {monthly_topup} в месяц накопительный вклад принесёт {projected_income} за год. Открыть вклад?",
		Placeholders: []Placeholder{
			{Key: "monthly_topup", Type: PlaceholderMoney, Required: true},
			{Key: "projected_income", Type: PlaceholderMoney, Required: true},
		},
	},
	{
		ID:          "multi_currency_deposit",
		ProductName: "Депозит Мультивалютный",
		Body:        "{name}, держите средства сразу в {currencies} и получайте {projected_income} дохода в год. Открыть вклад?",
		Placeholders: []Placeholder{
			{Key: "currencies", Type: PlaceholderPlain, Required: true},
			{Key: "projected_income", Type: PlaceholderMoney, Required: true},
		},
	},
	{
		ID:          "investments",
		ProductName: "Инвестиции",
		Body:        "{name}, начните инвестировать уже от {entry_amount} без комиссии на старте. Попробовать инвестиции?",
		Placeholders: []Placeholder{
			{Key: "entry_amount", Type: PlaceholderMoney, Required: true},
		},
	},
	{
		ID:          "gold_bars",
		ProductName: "Золотые слитки",
		Body:        "{name}, золотые слитки диверсифицируют до {diversification_share} ваших сбережений в защитный актив. Узнать подробнее?",
		Placeholders: []Placeholder{
			{Key: "diversification_share", Type: PlaceholderPercent, Required: true},
		},
	},
	{
		ID:          "cash_credit",
		ProductName: "Кредит наличными",
		Body:        "{name}, вам доступен кредит наличными до {amount} без залога и справок. Оформить кредит?",
		Placeholders: []Placeholder{
			{Key: "amount", Type: PlaceholderMoney, Required: true},
		},
	},
	{
		ID:          "generic_fallback",
		ProductName: "",
		Body:        "{name}, для вас есть персональное предложение в приложении. Посмотреть детали?",
	},
}

// byProductName resolves a product name to its template, falling back to
// the generic id (and logging the miss) when no exact match exists.
func byProductName(productName string) Template {
	for _, t := range registry {
		if t.ProductName == productName {
			return t
		}
	}
	log.Warn().Str("product", productName).Msg("no template registered for product, using generic fallback")
	return genericFallback()
}

func genericFallback() Template {
	for _, t := range registry {
		if t.ID == "generic_fallback" {
			return t
		}
	}
	panic("generic_fallback template missing from registry")
}
