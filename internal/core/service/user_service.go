package service

import (
	"context"
	"fmt"

	"github.com/eventback/auth-server/internal/core/domain"
	"github.com/eventback/auth-server/internal/core/ports"
)

const minPasswordLength = 8

// UserService implements registration and user lookup.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher) *UserService {
	return &UserService{repo: repo, hasher: hasher}
}

// SignUp validates the credentials, hashes the password and creates the user
// with the default USER role. Validation failures happen before any store
// access; uniqueness is enforced by the store itself, so no record is written
// on any failure path.
func (s *UserService) SignUp(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username must not be empty", domain.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password must not be empty", domain.ErrValidation)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// FindByID looks up a user by its opaque identifier.
func (s *UserService) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}
