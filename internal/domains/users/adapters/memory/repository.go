package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/mohamedsham20017/ecommerce-website/internal/domains/users/domain"
	"github.com/mohamedsham20017/ecommerce-website/internal/domains/users/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory user persistence adapter.
type Repository struct {
	mu     sync.RWMutex
	users  map[string]*domain.User
	nextID int64
}

func NewRepository() *Repository {
	return &Repository{users: map[string]*domain.User{}}
}

func (r *Repository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	clone := *user
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[clone.Username]; ok {
		return nil, ports.ErrUsernameTaken
	}
	r.nextID++
	clone.ID = r.nextID
	r.users[clone.Username] = &clone
	out := clone
	return &out, nil
}

func (r *Repository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[username]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *Repository) Delete(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[username]; !ok {
		return ports.ErrNotFound
	}
	delete(r.users, username)
	return nil
}
