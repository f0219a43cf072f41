package domain

// CustomerView is the in-memory composition scenarios read: the customer
// plus the transactions and transfers inside the analysis window.
type CustomerView struct {
	Customer     Customer
	Transactions []Transaction
	Transfers    []Transfer
}
