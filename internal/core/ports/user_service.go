package ports

import (
	"context"

	"github.com/eventback/auth-server/internal/core/domain"
)

type UserService interface {
	SignUp(ctx context.Context, username, password string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
