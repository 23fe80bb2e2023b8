// Package token implements the JWT issuer/verifier behind ports.TokenIssuer.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/eventback/auth-server/internal/core/domain"
)

const defaultTTL = time.Hour

// JWT signs and verifies HS256 tokens with a single shared secret.
type JWT struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// jwtClaims is the wire shape of the token payload.
type jwtClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// NewJWT builds an issuer for the given secret and token lifetime.
// If ttl <= 0, defaultTTL is used.
func NewJWT(secret string, ttl time.Duration) *JWT {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &JWT{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock overrides the time source. Intended for expiration tests.
func (j *JWT) WithClock(now func() time.Time) *JWT {
	j.now = now
	return j
}

// Issue signs a token carrying the given claims with the configured TTL.
func (j *JWT) Issue(claims domain.TokenClaims) (string, error) {
	now := j.now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims{
		Username: claims.Username,
		Role:     claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	})
	return t.SignedString(j.secret)
}

// Verify parses and validates a signed token. Expired tokens return
// domain.ErrTokenExpired; any other failure (bad signature, malformed
// structure, wrong algorithm) returns domain.ErrTokenInvalid.
func (j *JWT) Verify(token string) (*domain.TokenClaims, error) {
	var wire jwtClaims
	parsed, err := jwt.ParseWithClaims(token, &wire, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return j.secret, nil
	}, jwt.WithTimeFunc(j.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims := &domain.TokenClaims{
		Username: wire.Username,
		Subject:  wire.Subject,
		Role:     wire.Role,
	}
	if wire.ExpiresAt != nil {
		claims.ExpiresAt = wire.ExpiresAt.Time
	}
	return claims, nil
}
