package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/domain"
	"github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order persistence adapter. Orders are kept in
// insertion order so listings match the postgres adapter's creation order.
type Repository struct {
	mu     sync.RWMutex
	orders []*domain.Order
	nextID int64
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) Save(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := *order
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	clone.ID = r.nextID
	clone.CreatedAt = time.Now()
	r.orders = append(r.orders, &clone)
	out := clone
	return &out, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, order := range r.orders {
		if order.ID == id {
			clone := *order
			return &clone, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (r *Repository) FindByOwner(_ context.Context, owner string) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Order, 0)
	for _, order := range r.orders {
		if order.Owner == owner {
			clone := *order
			list = append(list, &clone)
		}
	}
	return list, nil
}

func (r *Repository) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.orders[:0]
	var removed int64
	for _, order := range r.orders {
		if order.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, order)
	}
	r.orders = kept
	return removed, nil
}
