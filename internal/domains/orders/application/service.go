package application

import (
	"context"
	"strings"
	"time"

	"github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/domain"
	"github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/ports"
)

// DateLayout is the wire format for purchase dates, matching the HTML
// date input.
const DateLayout = "2006-01-02"

// Service orchestrates the order submission and retrieval workflow.
type Service struct {
	repo ports.Repository
	now  func() time.Time
}

type Option func(*Service)

// WithClock overrides the wall clock used for the past-date rule.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Submit validates the submission and persists a new order owned by the
// given identity key. Validation happens strictly before the write: a
// rejected submission never reaches the repository.
func (s *Service) Submit(ctx context.Context, owner, email string, sub ports.Submission) (*domain.Order, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return nil, mapError(domain.ErrEmptyOwner)
	}
	date, err := time.Parse(DateLayout, strings.TrimSpace(sub.Date))
	if err != nil {
		return nil, mapError(ErrUnparsableDate)
	}
	order, err := domain.NewOrder(
		owner,
		strings.TrimSpace(email),
		date,
		domain.TimeSlot(sub.Time),
		domain.Location(sub.Location),
		domain.Product(sub.Product),
		sub.Quantity,
		strings.TrimSpace(sub.Message),
		s.now(),
	)
	if err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, order)
}

// ListByOwner returns the caller's orders in creation order. The sequence
// may be empty; callers decide how to present that.
func (s *Service) ListByOwner(ctx context.Context, owner string) ([]*domain.Order, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return nil, mapError(domain.ErrEmptyOwner)
	}
	return s.repo.FindByOwner(ctx, owner)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

var _ ports.Service = (*Service)(nil)
