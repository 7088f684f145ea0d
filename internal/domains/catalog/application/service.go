package application

import (
	"context"

	"github.com/mohamedsham20017/ecommerce-website/internal/domains/catalog/domain"
	"github.com/mohamedsham20017/ecommerce-website/internal/domains/catalog/ports"
)

// Service orchestrates catalog browsing use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// Categories returns all categories, title-sorted for navigation.
func (s *Service) Categories(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

// ProductsForCategory resolves a category slug and lists its products.
func (s *Service) ProductsForCategory(ctx context.Context, slug string) (*domain.Category, []*domain.Product, error) {
	category, err := s.repo.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	products, err := s.repo.ListProductsByCategory(ctx, category.ID)
	if err != nil {
		return nil, nil, err
	}
	return category, products, nil
}

func (s *Service) Product(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetProduct(ctx, id)
}

var _ ports.Service = (*Service)(nil)
