package ports

import (
	"context"
	"errors"
	"time"

	"github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// Repository persists orders. FindByOwner returns orders in creation order;
// orders are never updated after the initial Save.
type Repository interface {
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	FindByOwner(ctx context.Context, owner string) ([]*domain.Order, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
