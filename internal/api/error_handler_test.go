package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eventback/auth-server/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(err, c)

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, resp
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	code, resp := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if resp["message"] != "missing authorization header" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	if resp["status"] != float64(http.StatusUnauthorized) {
		t.Fatalf("envelope status must mirror http status, got %v", resp["status"])
	}
}

func TestHTTPErrorHandler_TokenErrorsCollapse(t *testing.T) {
	codeExpired, respExpired := renderError(t, domain.ErrTokenExpired)
	codeInvalid, respInvalid := renderError(t, domain.ErrTokenInvalid)

	if codeExpired != http.StatusUnauthorized || codeInvalid != http.StatusUnauthorized {
		t.Fatalf("expected 401 for both, got %d and %d", codeExpired, codeInvalid)
	}
	if respExpired["message"] != respInvalid["message"] {
		t.Fatalf("expired and invalid tokens must share one outward message: %v vs %v",
			respExpired["message"], respInvalid["message"])
	}
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrValidation, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrRoleForbidden, http.StatusForbidden},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusConflict},
	}
	for _, tc := range cases {
		code, _ := renderError(t, tc.err)
		if code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
	}
}

func TestHTTPErrorHandler_UnknownError(t *testing.T) {
	code, resp := renderError(t, errors.New("dial tcp: connection refused"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if resp["message"] != "Server error" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	// Internal detail must not leak into the outward message.
	if msg, _ := resp["message"].(string); msg == "dial tcp: connection refused" {
		t.Fatalf("raw error leaked to client")
	}
}
