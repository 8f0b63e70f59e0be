package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cyberforum/forum-api/internal/core/domain"
)

func invoke(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestErrorHandler_ValidationError(t *testing.T) {
	rec, body := invoke(t, domain.NewValidationError("title", "title too long (max 100 characters)"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body["error"] != "title too long (max 100 characters)" {
		t.Errorf("expected the validation message, got %v", body["error"])
	}
}

func TestErrorHandler_NotFound(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{domain.ErrUserNotFound, "user not found"},
		{domain.ErrPostNotFound, "post not found"},
	}
	for _, tc := range cases {
		rec, body := invoke(t, tc.err)
		if rec.Code != http.StatusNotFound {
			t.Errorf("%v: expected 404, got %d", tc.err, rec.Code)
		}
		if body["error"] != tc.want {
			t.Errorf("%v: expected %q, got %v", tc.err, tc.want, body["error"])
		}
	}
}

func TestErrorHandler_WrappedNotFound(t *testing.T) {
	rec, _ := invoke(t, fmt.Errorf("lookup failed: %w", domain.ErrPostNotFound))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for wrapped sentinel, got %d", rec.Code)
	}
}

func TestErrorHandler_StorageErrorIsOpaque(t *testing.T) {
	rec, body := invoke(t, errors.New("mongo: connection reset"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["error"] != "internal server error" {
		t.Errorf("storage errors must not leak details, got %v", body["error"])
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, body := invoke(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body["error"] != "invalid payload" {
		t.Errorf("expected echo error message, got %v", body["error"])
	}
}
