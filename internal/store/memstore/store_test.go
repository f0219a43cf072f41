package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/akniet/push-analytics/internal/domain"
	"github.com/shopspring/decimal"
)

func TestStore_GetCustomer_NotFound(t *testing.T) {
	s := New()
	if _, err := s.GetCustomer(context.Background(), 42); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_ListTransactions_FiltersWindowAndOrders(t *testing.T) {
	s := New()
	s.AddCustomer(domain.Customer{Code: 1})
	now := time.Now()
	s.AddTransaction(domain.Transaction{ClientCode: 1, Date: now.AddDate(0, 0, -5), Amount: decimal.NewFromInt(100)})
	s.AddTransaction(domain.Transaction{ClientCode: 1, Date: now.AddDate(0, 0, -1), Amount: decimal.NewFromInt(200)})
	s.AddTransaction(domain.Transaction{ClientCode: 1, Date: now.AddDate(0, 0, -200), Amount: decimal.NewFromInt(300)})

	got, err := s.ListTransactions(context.Background(), 1, 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 transactions within window, got %d", len(got))
	}
	if !got[0].Date.After(got[1].Date) {
		t.Errorf("expected newest-first ordering")
	}
}

func TestStore_HonoursDeadline(t *testing.T) {
	s := New()
	s.Sleep = 200 * time.Millisecond
	s.AddCustomer(domain.Customer{Code: 1})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := s.GetCustomer(ctx, 1)
	if err == nil {
		t.Fatal("expected deadline error, got nil")
	}
}
