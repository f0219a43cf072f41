package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akniet/push-analytics/internal/domain"
	"github.com/akniet/push-analytics/internal/store/memstore"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func seededStore() *memstore.Store {
	s := memstore.New()
	s.AddCustomer(domain.Customer{
		Code:              777,
		Name:              "Асем",
		Status:            domain.StatusPremium,
		City:              "Алматы",
		AvgMonthlyBalance: decimal.NewFromInt(900000),
	})
	for i := 0; i < 6; i++ {
		s.AddTransaction(domain.Transaction{
			ClientCode: 777,
			Date:       time.Now().AddDate(0, 0, -i*3),
			Category:   domain.CategoryTaxi,
			Amount:     decimal.NewFromInt(5000),
			Currency:   domain.CurrencyKZT,
		})
	}
	return s
}

func TestHealth(t *testing.T) {
	e := echo.New()
	h := New(seededStore(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Health(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["status"] != "healthy" || body["service"] != "push_analytics" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestAnalyze_MissingClientCodeIsValidationFailure(t *testing.T) {
	e := echo.New()
	h := New(seededStore(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewBufferString(`{"customer":{"name":"Асем"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Analyze(c); err != nil {
		t.Fatalf("expected a JSON error response, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAnalyze_ReturnsTopProduct(t *testing.T) {
	e := echo.New()
	h := New(seededStore(), nil)

	body := `{
		"customer": {"client_code": 1, "name": "Тест", "status": "premium", "city": "Алматы", "avg_monthly_balance": "900000"},
		"transactions": [
			{"date": "2026-07-01", "category": "Такси", "amount": "8000", "currency": "KZT"},
			{"date": "2026-07-03", "category": "Такси", "amount": "8000", "currency": "KZT"}
		],
		"transfers": []
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Analyze(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ClientCode != 1 {
		t.Errorf("client_code = %d, want 1", resp.ClientCode)
	}
}

func TestAnalyzeAll_ReturnsUpToFourRecommendations(t *testing.T) {
	e := echo.New()
	h := New(seededStore(), nil)

	body := `{
		"customer": {"client_code": 2, "name": "Тест", "status": "premium", "city": "Алматы", "avg_monthly_balance": "1500000"},
		"transactions": [],
		"transfers": []
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/all", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.AnalyzeAll(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var resp analyzeAllResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Recommendations) > analyzeAllLimit {
		t.Errorf("got %d recommendations, want at most %d", len(resp.Recommendations), analyzeAllLimit)
	}
}

func TestTestClient_UnknownCodeIsNotFound(t *testing.T) {
	e := echo.New()
	h := New(seededStore(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/test/client/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("code")
	c.SetParamValues("999")

	if err := h.TestClient(c); err != nil {
		t.Fatalf("expected a JSON error response, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTestClient_KnownCodeReturnsRecommendations(t *testing.T) {
	e := echo.New()
	h := New(seededStore(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/test/client/777", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("code")
	c.SetParamValues("777")

	if err := h.TestClient(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp analyzeAllResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ClientCode != 777 {
		t.Errorf("client_code = %d, want 777", resp.ClientCode)
	}
	if len(resp.Recommendations) > testTopN {
		t.Errorf("got %d recommendations, want at most %d", len(resp.Recommendations), testTopN)
	}
}

func TestDBStatus_ReportsClientCount(t *testing.T) {
	e := echo.New()
	h := New(seededStore(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/test/db-status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.TestDBStatus(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var resp dbStatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "ok" || resp.ClientCount != 1 {
		t.Errorf("unexpected db-status response: %+v", resp)
	}
}

func TestExportCSV_WritesCSVBody(t *testing.T) {
	e := echo.New()
	h := New(seededStore(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/csv", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ExportCSV(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("client_code,product,push_notification")) {
		t.Errorf("expected CSV header in body, got %q", rec.Body.String())
	}
}
