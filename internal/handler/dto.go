package handler

import (
	"fmt"
	"time"

	"github.com/akniet/push-analytics/internal/domain"
	"github.com/shopspring/decimal"
)

// transactionRequest is the inline wire shape of a domain.Transaction
// (spec.md §6: "Body = one CustomerView (inline transactions/transfers)").
type transactionRequest struct {
	Date     string `json:"date"`
	Category string `json:"category"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type transferRequest struct {
	Date      string `json:"date"`
	Type      string `json:"type"`
	Direction string `json:"direction"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
}

type customerRequest struct {
	ClientCode        int     `json:"client_code"`
	Name              string  `json:"name"`
	Status            string  `json:"status"`
	City              string  `json:"city"`
	AvgMonthlyBalance string  `json:"avg_monthly_balance"`
	Age               *int    `json:"age,omitempty"`
}

// analyzeRequest is the body for POST /api/v1/analyze and
// /api/v1/analyze/all.
type analyzeRequest struct {
	Customer     customerRequest     `json:"customer"`
	Transactions []transactionRequest `json:"transactions"`
	Transfers    []transferRequest    `json:"transfers"`
}

// toDomainView validates and converts the wire request into a
// domain.CustomerView, returning the name of the first offending field on
// failure (spec.md §7 ValidationFailure: "400 with the offending field name").
func (r analyzeRequest) toDomainView() (domain.CustomerView, string, error) {
	if r.Customer.ClientCode == 0 {
		return domain.CustomerView{}, "customer.client_code", fmt.Errorf("required")
	}
	if r.Customer.Name == "" {
		return domain.CustomerView{}, "customer.name", fmt.Errorf("required")
	}
	balance, err := decimal.NewFromString(zeroIfEmpty(r.Customer.AvgMonthlyBalance))
	if err != nil {
		return domain.CustomerView{}, "customer.avg_monthly_balance", err
	}

	customer := domain.Customer{
		Code:              r.Customer.ClientCode,
		Name:              r.Customer.Name,
		Status:            domain.CustomerStatus(r.Customer.Status),
		City:              r.Customer.City,
		AvgMonthlyBalance: balance,
		Age:               r.Customer.Age,
	}

	transactions := make([]domain.Transaction, 0, len(r.Transactions))
	for i, tx := range r.Transactions {
		date, err := time.Parse("2006-01-02", tx.Date)
		if err != nil {
			return domain.CustomerView{}, fmt.Sprintf("transactions[%d].date", i), err
		}
		amount, err := decimal.NewFromString(zeroIfEmpty(tx.Amount))
		if err != nil {
			return domain.CustomerView{}, fmt.Sprintf("transactions[%d].amount", i), err
		}
		transactions = append(transactions, domain.Transaction{
			ClientCode: customer.Code,
			Date:       date,
			Category:   domain.Category(tx.Category),
			Amount:     amount,
			Currency:   domain.Currency(tx.Currency),
		})
	}

	transfers := make([]domain.Transfer, 0, len(r.Transfers))
	for i, tr := range r.Transfers {
		date, err := time.Parse("2006-01-02", tr.Date)
		if err != nil {
			return domain.CustomerView{}, fmt.Sprintf("transfers[%d].date", i), err
		}
		amount, err := decimal.NewFromString(zeroIfEmpty(tr.Amount))
		if err != nil {
			return domain.CustomerView{}, fmt.Sprintf("transfers[%d].amount", i), err
		}
		transfers = append(transfers, domain.Transfer{
			ClientCode: customer.Code,
			Date:       date,
			Type:       domain.TransferType(tr.Type),
			Direction:  domain.TransferDirection(tr.Direction),
			Amount:     amount,
			Currency:   domain.Currency(tr.Currency),
		})
	}

	return domain.CustomerView{Customer: customer, Transactions: transactions, Transfers: transfers}, "", nil
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

// recommendationResponse is the wire shape of a rendered recommendation.
type recommendationResponse struct {
	Product          string  `json:"product"`
	Priority         string  `json:"priority"`
	Score            float64 `json:"score"`
	PushNotification string  `json:"push_notification"`
}

func toRecommendationResponse(rec domain.Recommendation) recommendationResponse {
	return recommendationResponse{
		Product:          rec.ProductName,
		Priority:         string(rec.Priority),
		Score:            rec.Score,
		PushNotification: rec.Message,
	}
}

// analyzeResponse is the body for POST /api/v1/analyze.
type analyzeResponse struct {
	ClientCode       int    `json:"client_code"`
	Product          string `json:"product"`
	PushNotification string `json:"push_notification"`
}

// analyzeAllResponse is the body for POST /api/v1/analyze/all.
type analyzeAllResponse struct {
	ClientCode      int                       `json:"client_code"`
	Recommendations []recommendationResponse `json:"recommendations"`
}

// dbStatusResponse is the body for GET /api/v1/test/db-status.
type dbStatusResponse struct {
	Status        string `json:"status"`
	ClientCount   int    `json:"client_count"`
	SampleMessage string `json:"message,omitempty"`
}
