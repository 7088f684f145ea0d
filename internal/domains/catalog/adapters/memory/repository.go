package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/mohamedsham20017/ecommerce-website/internal/domains/catalog/domain"
	"github.com/mohamedsham20017/ecommerce-website/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory catalog adapter.
type Repository struct {
	mu         sync.RWMutex
	categories map[int64]*domain.Category
	products   map[int64]*domain.Product
	nextCatID  int64
	nextProdID int64
}

func NewRepository() *Repository {
	return &Repository{
		categories: map[int64]*domain.Category{},
		products:   map[int64]*domain.Product{},
	}
}

func (r *Repository) SaveCategory(_ context.Context, category *domain.Category) (*domain.Category, error) {
	if category == nil {
		return nil, errors.New("category is nil")
	}
	clone := *category
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextCatID++
		clone.ID = r.nextCatID
	}
	r.categories[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *Repository) ListCategories(_ context.Context) ([]*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		clone := *c
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Title < list[j].Title })
	return list, nil
}

func (r *Repository) GetCategoryBySlug(_ context.Context, slug string) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.categories {
		if c.Slug == slug {
			clone := *c
			return &clone, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (r *Repository) SaveProduct(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	clone := *product
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextProdID++
		clone.ID = r.nextProdID
	}
	r.products[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *Repository) ListProductsByCategory(_ context.Context, categoryID int64) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Product, 0)
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			clone := *p
			list = append(list, &clone)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *Repository) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *product
	return &clone, nil
}
