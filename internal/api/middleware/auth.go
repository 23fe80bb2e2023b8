package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eventback/auth-server/internal/api/metrics"
	"github.com/eventback/auth-server/internal/core/domain"
	"github.com/eventback/auth-server/internal/core/ports"
)

// ClaimsKey is the echo context key the verified claims are stored under.
const ClaimsKey = "claims"

// Auth extracts the bearer token, verifies it and injects the claims into the
// request context. Expired and malformed tokens are distinct internally but
// both answer 401 with the same message.
func Auth(issuer ports.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := issuer.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
				} else {
					metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the verified claims attached by Auth, or nil when the
// request never passed through it.
func ClaimsFrom(c echo.Context) *domain.TokenClaims {
	claims, _ := c.Get(ClaimsKey).(*domain.TokenClaims)
	return claims
}
