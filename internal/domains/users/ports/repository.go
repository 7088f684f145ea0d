package ports

import (
	"context"
	"errors"

	"github.com/mohamedsham20017/ecommerce-website/internal/domains/users/domain"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username is already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type Repository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Delete(ctx context.Context, username string) error
}
