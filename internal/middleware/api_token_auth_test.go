package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestAPITokenAuth_Success(t *testing.T) {
	e := echo.New()
	mw := NewAPITokenAuthMiddleware([]string{"pan_testtoken123"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/csv", nil)
	req.Header.Set("Authorization", "Bearer pan_testtoken123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handlerCalled := false
	handler := func(c echo.Context) error {
		handlerCalled = true
		if GetAPIToken(c) != "pan_testtoken123" {
			t.Errorf("expected token in context, got %q", GetAPIToken(c))
		}
		return c.String(http.StatusOK, "OK")
	}

	if err := mw.Authenticate()(handler)(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !handlerCalled {
		t.Error("handler was not called")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

func TestAPITokenAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	mw := NewAPITokenAuthMiddleware([]string{"pan_testtoken123"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/csv", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		t.Error("handler should not be called")
		return nil
	}

	if err := mw.Authenticate()(handler)(c); err != nil {
		t.Fatalf("expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}

func TestAPITokenAuth_InvalidFormat(t *testing.T) {
	e := echo.New()
	mw := NewAPITokenAuthMiddleware([]string{"pan_testtoken123"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/csv", nil)
	req.Header.Set("Authorization", "Invalid format")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		t.Error("handler should not be called")
		return nil
	}

	if err := mw.Authenticate()(handler)(c); err != nil {
		t.Fatalf("expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}

func TestAPITokenAuth_WrongPrefix(t *testing.T) {
	e := echo.New()
	mw := NewAPITokenAuthMiddleware([]string{"pan_testtoken123"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/csv", nil)
	req.Header.Set("Authorization", "Bearer jwt_token_here")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		t.Error("handler should not be called")
		return nil
	}

	if err := mw.Authenticate()(handler)(c); err != nil {
		t.Fatalf("expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}

func TestAPITokenAuth_UnknownToken(t *testing.T) {
	e := echo.New()
	mw := NewAPITokenAuthMiddleware([]string{"pan_testtoken123"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/csv", nil)
	req.Header.Set("Authorization", "Bearer pan_invalidtoken")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		t.Error("handler should not be called")
		return nil
	}

	if err := mw.Authenticate()(handler)(c); err != nil {
		t.Fatalf("expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}
