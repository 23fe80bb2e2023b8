package ports

import "github.com/eventback/auth-server/internal/core/domain"

// TokenIssuer signs and verifies bearer tokens. Verify is pure and
// side-effect-free; a token stays valid until its embedded expiration
// regardless of server-side state changes after issuance.
type TokenIssuer interface {
	Issue(claims domain.TokenClaims) (string, error)
	Verify(token string) (*domain.TokenClaims, error)
}
