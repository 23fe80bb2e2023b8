package ports

import (
	"context"

	"github.com/eventback/auth-server/internal/core/domain"
)

// UserRepository defines the interface for user persistence. Create must rely
// on the store's own uniqueness enforcement for usernames and report a
// conflict as domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
