package ports

import (
	"context"
	"errors"

	"github.com/mohamedsham20017/ecommerce-website/internal/domains/catalog/domain"
)

var ErrNotFound = errors.New("catalog entry not found")

// Repository persists the browsable catalog.
type Repository interface {
	SaveCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	// ListCategories returns all categories sorted by title.
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	SaveProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID int64) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
}
