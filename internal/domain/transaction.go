package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is a controlled-vocabulary transaction category label.
// Values are already normalized Russian strings; scenarios match them by
// exact string equality, never substring or case-folded comparison.
type Category string

const (
	CategoryTaxi          Category = "Такси"
	CategoryHotels        Category = "Отели"
	CategoryTravel        Category = "Путешествия"
	CategoryCafe          Category = "Кафе и рестораны"
	CategoryGroceries     Category = "Продукты питания"
	CategoryClothes       Category = "Одежда и обувь"
	CategoryEntertainment Category = "Развлечения"
	CategoryCinema        Category = "Кино"
	CategoryHomeGames     Category = "Играем дома"
	CategoryHomeMovies    Category = "Смотрим дома"
	CategoryCosmetics     Category = "Косметика и Парфюмерия"
	CategorySport         Category = "Спорт"
	CategoryMedicine      Category = "Медицина"
	CategoryAuto          Category = "Авто"
	CategoryFuel          Category = "АЗС"
	CategoryGifts         Category = "Подарки"
	CategoryJewelry       Category = "Ювелирные украшения"
	CategoryOther         Category = "Other"
)

// Currency is an ISO-like currency code.
type Currency string

const (
	CurrencyKZT Currency = "KZT"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyRUB Currency = "RUB"
)

// Transaction is a single card purchase. Amount is non-negative and
// represents an outflow from the customer's perspective.
type Transaction struct {
	ClientCode int
	Date       time.Time
	Category   Category
	Amount     decimal.Decimal
	Currency   Currency
}

// NormalizedCategory buckets unknown categories under Other while keeping
// the original for grand-total purposes (grand totals count every row).
func NormalizedCategory(c Category) Category {
	switch c {
	case CategoryTaxi, CategoryHotels, CategoryTravel, CategoryCafe, CategoryGroceries,
		CategoryClothes, CategoryEntertainment, CategoryCinema, CategoryHomeGames,
		CategoryHomeMovies, CategoryCosmetics, CategorySport, CategoryMedicine,
		CategoryAuto, CategoryFuel, CategoryGifts, CategoryJewelry:
		return c
	default:
		return CategoryOther
	}
}
