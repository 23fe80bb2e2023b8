package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eventback/auth-server/internal/core/domain"
	"github.com/eventback/auth-server/internal/token"
)

func signedToken(t *testing.T, issuer *token.JWT, role string) string {
	t.Helper()
	signed, err := issuer.Issue(domain.TokenClaims{
		Username: "alice",
		Subject:  "user-1",
		Role:     role,
	})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return signed
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	issuer := token.NewJWT("secret", time.Hour)
	signed := signedToken(t, issuer, domain.RoleUser)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(issuer)
	handler := mw(func(c echo.Context) error {
		called = true
		claims := ClaimsFrom(c)
		if claims == nil {
			t.Fatalf("claims not attached to context")
		}
		if claims.Username != "alice" || claims.Role != domain.RoleUser || claims.Subject != "user-1" {
			t.Fatalf("unexpected claims: %+v", claims)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	issuer := token.NewJWT("secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(issuer)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	issuer := token.NewJWT("secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(issuer)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	e := echo.New()
	issuer := token.NewJWT("secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(issuer)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

// Expired and malformed tokens must deny with the same outward outcome.
func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	e := echo.New()
	now := time.Now()
	issuer := token.NewJWT("secret", time.Minute).WithClock(func() time.Time { return now })
	signed := signedToken(t, issuer, domain.RoleUser)
	issuer.WithClock(func() time.Time { return now.Add(2 * time.Minute) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(issuer)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	expiredErr := handler(c)
	if expiredErr == nil {
		t.Fatalf("expected error for expired token")
	}
	e.HTTPErrorHandler(expiredErr, c)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.Header.Set(echo.HeaderAuthorization, "Bearer garbage")
	c2 := e.NewContext(req2, httptest.NewRecorder())
	malformedErr := mw(func(c echo.Context) error { return nil })(c2)

	var he1, he2 *echo.HTTPError
	if !errors.As(expiredErr, &he1) || !errors.As(malformedErr, &he2) {
		t.Fatalf("expected echo.HTTPError from both paths")
	}
	if he1.Code != he2.Code || he1.Message != he2.Message {
		t.Fatalf("expired and malformed tokens must be indistinguishable: %v vs %v", he1, he2)
	}
}
