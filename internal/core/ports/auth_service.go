package ports

import (
	"context"

	"github.com/eventback/auth-server/internal/core/domain"
)

type AuthService interface {
	SignIn(ctx context.Context, username, password string) (string, error)
	ValidateToken(token string) (*domain.TokenClaims, error)
}
