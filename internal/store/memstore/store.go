// Package memstore is an in-memory domain.CustomerStore used by tests. The
// /analyze endpoints do not use it: they build a CustomerView directly from
// the inline JSON body and read no store at all.
package memstore

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"github.com/akniet/push-analytics/internal/domain"
)

// Store is a map-backed domain.CustomerStore, grounded on the teacher's
// testutil.Mock*Repository shape (map-backed, an Add* helper per entity).
type Store struct {
	customers    map[int]domain.Customer
	transactions map[int][]domain.Transaction
	transfers    map[int][]domain.Transfer

	// Sleep, when set, is waited out at the start of every blocking method,
	// honouring ctx cancellation. Used to simulate store latency in
	// TestStore_HonoursDeadline.
	Sleep time.Duration
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		customers:    make(map[int]domain.Customer),
		transactions: make(map[int][]domain.Transaction),
		transfers:    make(map[int][]domain.Transfer),
	}
}

var _ domain.CustomerStore = (*Store)(nil)

// AddCustomer registers a customer record.
func (s *Store) AddCustomer(c domain.Customer) {
	s.customers[c.Code] = c
}

// AddTransaction appends a transaction for its client code.
func (s *Store) AddTransaction(t domain.Transaction) {
	s.transactions[t.ClientCode] = append(s.transactions[t.ClientCode], t)
}

// AddTransfer appends a transfer for its client code.
func (s *Store) AddTransfer(t domain.Transfer) {
	s.transfers[t.ClientCode] = append(s.transfers[t.ClientCode], t)
}

func (s *Store) wait(ctx context.Context) error {
	if s.Sleep == 0 {
		return nil
	}
	select {
	case <-time.After(s.Sleep):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// GetCustomer returns the customer record or domain.ErrNotFound.
func (s *Store) GetCustomer(ctx context.Context, code int) (*domain.Customer, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	c, ok := s.customers[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

// ListTransactions returns transactions within sinceDays, newest first.
func (s *Store) ListTransactions(ctx context.Context, code int, sinceDays int) ([]domain.Transaction, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	cutoff := time.Now().AddDate(0, 0, -sinceDays)
	var out []domain.Transaction
	for _, t := range s.transactions[code] {
		if !t.Date.Before(cutoff) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// ListTransfers returns transfers within sinceDays, newest first.
func (s *Store) ListTransfers(ctx context.Context, code int, sinceDays int) ([]domain.Transfer, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	cutoff := time.Now().AddDate(0, 0, -sinceDays)
	var out []domain.Transfer
	for _, t := range s.transfers[code] {
		if !t.Date.Before(cutoff) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// RandomCustomerCode picks a uniformly random stored customer code.
func (s *Store) RandomCustomerCode(ctx context.Context) (int, bool, error) {
	if err := s.wait(ctx); err != nil {
		return 0, false, err
	}
	if len(s.customers) == 0 {
		return 0, false, nil
	}
	codes := make([]int, 0, len(s.customers))
	for code := range s.customers {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes[rand.Intn(len(codes))], true, nil
}

// ListCustomerCodes returns up to limit customer codes in ascending order.
func (s *Store) ListCustomerCodes(ctx context.Context, limit int) ([]int, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	codes := make([]int, 0, len(s.customers))
	for code := range s.customers {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	if limit > 0 && len(codes) > limit {
		codes = codes[:limit]
	}
	return codes, nil
}
