package domain

import (
	"github.com/shopspring/decimal"
)

// CustomerStatus classifies a customer for status-weighted scoring.
type CustomerStatus string

const (
	StatusStandard CustomerStatus = "standard"
	StatusSalary   CustomerStatus = "salary"
	StatusPremium  CustomerStatus = "premium"
	StatusStudent  CustomerStatus = "student"
)

// StatusBonus returns the fixed status sub-score used across all scenarios.
func StatusBonus(status CustomerStatus) float64 {
	switch status {
	case StatusPremium:
		return 1.0
	case StatusSalary:
		return 0.8
	case StatusStandard:
		return 0.6
	case StatusStudent:
		return 0.4
	default:
		return 0.2
	}
}

// Customer is the account-holder record the core treats as read-only.
type Customer struct {
	Code           int
	Name           string
	Status         CustomerStatus
	City           string
	AvgMonthlyBalance decimal.Decimal
	Age            *int
}
