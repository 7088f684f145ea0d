package ports

import (
	"context"

	"github.com/mohamedsham20017/ecommerce-website/internal/domains/catalog/domain"
)

// Service exposes catalog browsing to adapters.
type Service interface {
	Categories(ctx context.Context) ([]*domain.Category, error)
	ProductsForCategory(ctx context.Context, slug string) (*domain.Category, []*domain.Product, error)
	Product(ctx context.Context, id int64) (*domain.Product, error)
}
