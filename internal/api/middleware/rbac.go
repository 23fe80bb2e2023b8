package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventback/auth-server/internal/core/domain"
)

// Protected operation identifiers. Routes declare which operation they serve;
// the role requirements live in one table instead of per-route metadata.
const (
	OpProfile    = "auth.profile"
	OpAdminData  = "auth.admin"
	OpCheckToken = "auth.check"
)

// operationRoles maps each operation to the roles allowed to call it. An
// empty set means any authenticated role.
var operationRoles = map[string][]string{
	OpProfile:    {},
	OpAdminData:  {domain.RoleAdmin},
	OpCheckToken: {domain.RoleUser, domain.RoleOperator, domain.RoleAuditor, domain.RoleAdmin},
}

// RequiredRoles returns the role set required for an operation. Unknown
// operations require no specific role.
func RequiredRoles(operation string) []string {
	return operationRoles[operation]
}

// RequireOperation enforces the role requirements of the given operation
// against the verified claims. Missing claims answer 401 (unauthenticated);
// a role outside the required set answers 403 (unauthorized).
func RequireOperation(operation string) echo.MiddlewareFunc {
	required := RequiredRoles(operation)
	allowed := make(map[string]struct{}, len(required))
	for _, r := range required {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil || claims.Role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if len(allowed) == 0 {
				return next(c)
			}
			if _, ok := allowed[claims.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
