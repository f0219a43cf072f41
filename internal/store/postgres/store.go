// Package postgres implements domain.CustomerStore over a pgxpool.Pool.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/akniet/push-analytics/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Store implements domain.CustomerStore against the four tables named in
// spec.md §6 (Clients, Transactions, Transfers; ProductBenefits is
// write-only from an external audit path and is never read here).
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a new Store over an already-connected pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

var _ domain.CustomerStore = (*Store)(nil)

type clientRow struct {
	ClientCode     int32
	Name           string
	Status         string
	Age            *int32
	City           string
	AvgBalanceKZT  decimal.Decimal `db:"avg_monthly_balance_KZT"`
}

// GetCustomer fetches a single customer by code.
func (s *Store) GetCustomer(ctx context.Context, code int) (*domain.Customer, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT client_code, name, status, age, city, "avg_monthly_balance_KZT"
		FROM "Clients" WHERE client_code = $1`, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[clientRow])
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	var age *int
	if row.Age != nil {
		a := int(*row.Age)
		age = &a
	}

	return &domain.Customer{
		Code:              int(row.ClientCode),
		Name:              row.Name,
		Status:            domain.CustomerStatus(row.Status),
		City:              row.City,
		AvgMonthlyBalance: row.AvgBalanceKZT,
		Age:               age,
	}, nil
}

type transactionRow struct {
	ClientCode int32
	Date       time.Time
	Category   string
	Amount     decimal.Decimal
	Currency   string
}

// ListTransactions returns transactions within the last sinceDays, newest first.
func (s *Store) ListTransactions(ctx context.Context, code int, sinceDays int) ([]domain.Transaction, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT client_code, date, category, amount, currency
		FROM "Transactions"
		WHERE client_code = $1 AND date >= $2
		ORDER BY date DESC`, code, cutoff(sinceDays))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	raw, err := pgx.CollectRows(rows, pgx.RowToStructByName[transactionRow])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	out := make([]domain.Transaction, 0, len(raw))
	for _, r := range raw {
		out = append(out, domain.Transaction{
			ClientCode: int(r.ClientCode),
			Date:       r.Date,
			Category:   domain.Category(r.Category),
			Amount:     r.Amount,
			Currency:   domain.Currency(r.Currency),
		})
	}
	return out, nil
}

type transferRow struct {
	ClientCode int32
	Date       time.Time
	Type       string
	Direction  string
	Amount     decimal.Decimal
	Currency   string
}

// ListTransfers returns transfers within the last sinceDays, newest first.
func (s *Store) ListTransfers(ctx context.Context, code int, sinceDays int) ([]domain.Transfer, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT client_code, date, type, direction, amount, currency
		FROM "Transfers"
		WHERE client_code = $1 AND date >= $2
		ORDER BY date DESC`, code, cutoff(sinceDays))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	raw, err := pgx.CollectRows(rows, pgx.RowToStructByName[transferRow])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	out := make([]domain.Transfer, 0, len(raw))
	for _, r := range raw {
		out = append(out, domain.Transfer{
			ClientCode: int(r.ClientCode),
			Date:       r.Date,
			Type:       domain.TransferType(r.Type),
			Direction:  domain.TransferDirection(r.Direction),
			Amount:     r.Amount,
			Currency:   domain.Currency(r.Currency),
		})
	}
	return out, nil
}

// RandomCustomerCode picks a uniformly random stored customer code.
func (s *Store) RandomCustomerCode(ctx context.Context) (int, bool, error) {
	row := s.pool.QueryRow(ctx, `SELECT client_code FROM "Clients" OFFSET floor(random() * (SELECT COUNT(*) FROM "Clients")) LIMIT 1`)
	var code int32
	if err := row.Scan(&code); err != nil {
		if err == pgx.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return int(code), true, nil
}

// ListCustomerCodes returns up to limit customer codes for batch export.
func (s *Store) ListCustomerCodes(ctx context.Context, limit int) ([]int, error) {
	rows, err := s.pool.Query(ctx, `SELECT client_code FROM "Clients" ORDER BY client_code LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var codes []int
	for rows.Next() {
		var code int32
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
		codes = append(codes, int(code))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return codes, nil
}

func cutoff(sinceDays int) time.Time {
	return time.Now().AddDate(0, 0, -sinceDays)
}
