// Package handler wires the HTTP surface (spec.md §6) onto the
// evaluator/ranker/notify pipeline.
package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/akniet/push-analytics/internal/domain"
	"github.com/akniet/push-analytics/internal/evaluator"
	"github.com/akniet/push-analytics/internal/export"
	"github.com/akniet/push-analytics/internal/notify"
	"github.com/akniet/push-analytics/internal/progress"
	"github.com/akniet/push-analytics/internal/ranker"
	"github.com/akniet/push-analytics/internal/scenario"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	analyzeAllLimit  = 4
	testTopN         = 3
	batchExportLimit = 50
)

// Handler holds the dependencies shared by every route.
type Handler struct {
	store        domain.CustomerStore
	fullEval     *evaluator.Evaluator
	fastExporter *export.Exporter
}

// New builds a Handler over the given store. hub may be nil, in which case
// CSV export runs without a live progress subscription.
func New(store domain.CustomerStore, hub *progress.Hub) *Handler {
	var publisher progress.Publisher = progress.NoOpPublisher{}
	if hub != nil {
		publisher = hub
	}
	return &Handler{
		store:        store,
		fullEval:     evaluator.New(scenario.All()),
		fastExporter: export.New(store, publisher),
	}
}

// Health is the liveness probe (spec.md §6).
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "push_analytics",
	})
}

// Analyze runs the full pipeline over an inline CustomerView and returns
// the top-1 recommendation.
func (h *Handler) Analyze(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return validationError(c, "body")
	}

	view, field, err := req.toDomainView()
	if err != nil {
		return validationError(c, field)
	}

	top := h.evaluateTop(c.Request().Context(), view, 1)
	if len(top) == 0 {
		return c.JSON(http.StatusOK, analyzeResponse{ClientCode: view.Customer.Code})
	}

	return c.JSON(http.StatusOK, analyzeResponse{
		ClientCode:       view.Customer.Code,
		Product:          top[0].Product,
		PushNotification: top[0].PushNotification,
	})
}

// AnalyzeAll runs the full pipeline over an inline CustomerView and
// returns up to four ranked recommendations.
func (h *Handler) AnalyzeAll(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return validationError(c, "body")
	}

	view, field, err := req.toDomainView()
	if err != nil {
		return validationError(c, field)
	}

	top := h.evaluateTop(c.Request().Context(), view, analyzeAllLimit)
	return c.JSON(http.StatusOK, analyzeAllResponse{
		ClientCode:      view.Customer.Code,
		Recommendations: top,
	})
}

// TestRandom picks a random stored customer and returns its top-3
// recommendations.
func (h *Handler) TestRandom(c echo.Context) error {
	ctx := c.Request().Context()

	code, ok, err := h.store.RandomCustomerCode(ctx)
	if err != nil {
		return storeError(c, err)
	}
	if !ok {
		return notFoundError(c, "no customers in store")
	}

	return h.respondWithClient(c, code)
}

// TestClient returns top-3 recommendations for a specific customer code.
func (h *Handler) TestClient(c echo.Context) error {
	code, err := parseCode(c.Param("code"))
	if err != nil {
		return validationError(c, "code")
	}
	return h.respondWithClient(c, code)
}

// TestDBStatus reports store health and row counts.
func (h *Handler) TestDBStatus(c echo.Context) error {
	ctx := c.Request().Context()
	codes, err := h.store.ListCustomerCodes(ctx, 1_000_000)
	if err != nil {
		return c.JSON(http.StatusOK, dbStatusResponse{Status: "unavailable", SampleMessage: err.Error()})
	}
	return c.JSON(http.StatusOK, dbStatusResponse{Status: "ok", ClientCount: len(codes)})
}

// ExportCSV streams top-1 rows for up to 50 stored customers.
func (h *Handler) ExportCSV(c echo.Context) error {
	ctx := c.Request().Context()
	codes, err := h.store.ListCustomerCodes(ctx, batchExportLimit)
	if err != nil {
		return storeError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)

	runID := export.RunID(time.Now(), "batch")
	if err := h.fastExporter.Run(ctx, runID, codes, c.Response()); err != nil {
		log.Error().Err(err).Msg("csv export failed mid-stream")
	}
	return nil
}

// ExportCSVClient streams top-3 rows for a single customer.
func (h *Handler) ExportCSVClient(c echo.Context) error {
	code, err := parseCode(c.Param("code"))
	if err != nil {
		return validationError(c, "code")
	}

	ctx := c.Request().Context()
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)

	runID := export.RunID(time.Now(), "client")
	if err := h.fastExporter.RunTopN(ctx, runID, []int{code}, testTopN, c.Response()); err != nil {
		log.Error().Err(err).Int("client_code", code).Msg("csv client export failed mid-stream")
	}
	return nil
}

// respondWithClient loads one stored customer and responds with its
// top-3 ranked, rendered recommendations.
func (h *Handler) respondWithClient(c echo.Context, code int) error {
	ctx := c.Request().Context()

	customer, err := h.store.GetCustomer(ctx, code)
	if err != nil {
		return storeError(c, err)
	}
	txs, err := h.store.ListTransactions(ctx, code, domain.Window)
	if err != nil {
		return storeError(c, err)
	}
	transfers, err := h.store.ListTransfers(ctx, code, domain.Window)
	if err != nil {
		return storeError(c, err)
	}

	view := domain.CustomerView{Customer: *customer, Transactions: txs, Transfers: transfers}
	top := h.evaluateTop(ctx, view, testTopN)

	return c.JSON(http.StatusOK, analyzeAllResponse{
		ClientCode:      code,
		Recommendations: top,
	})
}

// evaluateTop runs the full scenario set under the full-pipeline deadline,
// ranks the surviving results, and renders up to n recommendations.
func (h *Handler) evaluateTop(ctx context.Context, view domain.CustomerView, n int) []recommendationResponse {
	agg := domain.NewAggregates(view)

	deadlineCtx, cancel := context.WithTimeout(ctx, evaluator.FullDeadline)
	defer cancel()

	results := h.fullEval.Run(deadlineCtx, view, agg)
	top := ranker.TopN(results, n)

	out := make([]recommendationResponse, 0, len(top))
	for _, result := range top {
		rec := notify.Render(result, view.Customer.Name)
		out = append(out, toRecommendationResponse(rec))
	}
	return out
}

func parseCode(s string) (int, error) {
	var code int
	_, err := fmt.Sscanf(s, "%d", &code)
	return code, err
}
