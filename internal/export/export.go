// Package export streams the batch CSV push-recommendation export,
// touching at most one customer's intermediate state at a time.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/akniet/push-analytics/internal/domain"
	"github.com/akniet/push-analytics/internal/evaluator"
	"github.com/akniet/push-analytics/internal/notify"
	"github.com/akniet/push-analytics/internal/progress"
	"github.com/akniet/push-analytics/internal/ranker"
	"github.com/akniet/push-analytics/internal/scenario"
	"github.com/rs/zerolog/log"
)

// FastScenarios is the restricted top-5 scenario set the fast/batch export
// path evaluates per customer (spec.md §4.8).
func FastScenarios() []domain.Scenario {
	return []domain.Scenario{
		scenario.TravelCard{},
		scenario.CreditCard{},
		scenario.Investments{},
		scenario.PremiumCard{},
		scenario.CashCredit{},
	}
}

const (
	noProductsDiagnostic  = "Нет подходящих продуктов"
	analysisErrDiagnostic = "Ошибка анализа"
)

// Exporter builds the CSV push-recommendation export for a population of
// customers using the fast scenario set.
type Exporter struct {
	Store     domain.CustomerStore
	Evaluator *evaluator.Evaluator
	Publisher progress.Publisher
}

// New builds an Exporter backed by the given store. A NoOpPublisher is
// used when publisher is nil, so callers that don't care about live
// progress never need to wire one up.
func New(store domain.CustomerStore, publisher progress.Publisher) *Exporter {
	if publisher == nil {
		publisher = progress.NoOpPublisher{}
	}
	return &Exporter{
		Store:     store,
		Evaluator: evaluator.New(FastScenarios()),
		Publisher: publisher,
	}
}

// Run streams one top-1 CSV row per customer code in codes to w: header
// first, then `client_code,product,push_notification` rows,
// CRLF-terminated. It never holds more than a single customer's worth of
// intermediate data (spec.md §4.8).
func (e *Exporter) Run(ctx context.Context, runID string, codes []int, w io.Writer) error {
	return e.RunTopN(ctx, runID, codes, 1, w)
}

// RunTopN streams up to n ranked rows per customer code in codes to w.
// /api/v1/export/csv uses n=1 across a population; /export/csv/client/{code}
// uses n=3 for a single customer (spec.md §6).
func (e *Exporter) RunTopN(ctx context.Context, runID string, codes []int, n int, w io.Writer) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true

	if err := writer.Write([]string{"client_code", "product", "push_notification"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	total := len(codes)
	e.Publisher.Publish(runID, progress.Started(runID, total))

	for i, code := range codes {
		select {
		case <-ctx.Done():
			e.Publisher.Publish(runID, progress.Failed(runID, i, total, ctx.Err().Error()))
			return ctx.Err()
		default:
		}

		for _, row := range e.rowsFor(ctx, code, n) {
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("write csv row for client %d: %w", code, err)
			}
			writer.Flush()
			if err := writer.Error(); err != nil {
				return err
			}
		}

		e.Publisher.Publish(runID, progress.RowProcessed(runID, i+1, total, code))
	}

	e.Publisher.Publish(runID, progress.Completed(runID, total, total))
	return nil
}

// rowsFor evaluates one customer and produces up to n ranked CSV rows,
// degrading to a single diagnostic row on any pipeline failure rather than
// aborting the export.
func (e *Exporter) rowsFor(ctx context.Context, code int, n int) [][]string {
	customer, err := e.Store.GetCustomer(ctx, code)
	if err != nil {
		log.Warn().Err(err).Int("client_code", code).Msg("export: customer lookup failed")
		return [][]string{{itoa(code), analysisErrDiagnostic, analysisErrDiagnostic}}
	}

	txs, err := e.Store.ListTransactions(ctx, code, domain.Window)
	if err != nil {
		log.Warn().Err(err).Int("client_code", code).Msg("export: transaction lookup failed")
		return [][]string{{itoa(code), analysisErrDiagnostic, analysisErrDiagnostic}}
	}
	transfers, err := e.Store.ListTransfers(ctx, code, domain.Window)
	if err != nil {
		log.Warn().Err(err).Int("client_code", code).Msg("export: transfer lookup failed")
		return [][]string{{itoa(code), analysisErrDiagnostic, analysisErrDiagnostic}}
	}

	view := domain.CustomerView{Customer: *customer, Transactions: txs, Transfers: transfers}
	agg := domain.NewAggregates(view)

	deadlineCtx, cancel := context.WithTimeout(ctx, evaluator.FastDeadline)
	defer cancel()

	results := e.Evaluator.Run(deadlineCtx, view, agg)
	top := ranker.TopN(results, n)
	if len(top) == 0 {
		return [][]string{{itoa(code), noProductsDiagnostic, noProductsDiagnostic}}
	}

	rows := make([][]string, 0, len(top))
	for _, result := range top {
		rec := notify.Render(result, customer.Name)
		rows = append(rows, []string{itoa(code), rec.ProductName, rec.Message})
	}
	return rows
}

func itoa(v int) string {
	return fmt.Sprintf("%d", v)
}

// RunID mints a stable identifier for a fresh export run's progress
// subscription.
func RunID(now time.Time, suffix string) string {
	return fmt.Sprintf("%d-%s", now.UnixNano(), suffix)
}
