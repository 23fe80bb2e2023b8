package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventback/auth-server/internal/core/domain"
	"github.com/eventback/auth-server/internal/core/ports"
)

// AuthService implements credential verification and token issuance.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	issuer ports.TokenIssuer
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, issuer ports.TokenIssuer) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, issuer: issuer}
}

// SignIn verifies the credentials and returns a signed access token.
// "No such user" and "wrong password" both surface as
// domain.ErrInvalidCredentials so the response cannot be used to enumerate
// usernames.
func (s *AuthService) SignIn(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(domain.TokenClaims{
		Username: user.Username,
		Subject:  user.ID,
		Role:     user.Role,
	})
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// ValidateToken verifies a raw token string and returns its claims. Every
// verification failure, expiry included, collapses to domain.ErrTokenInvalid.
func (s *AuthService) ValidateToken(token string) (*domain.TokenClaims, error) {
	claims, err := s.issuer.Verify(token)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
