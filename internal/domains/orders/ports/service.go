package ports

import (
	"context"

	"github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/domain"
)

// Submission carries the raw purchase form fields. Date is the unparsed
// form value; everything else is passed through as submitted.
type Submission struct {
	Date     string
	Time     string
	Location string
	Product  string
	Quantity int32
	Message  string
}

// Service exposes the order workflow use cases to adapters.
type Service interface {
	Submit(ctx context.Context, owner, email string, sub Submission) (*domain.Order, error)
	ListByOwner(ctx context.Context, owner string) ([]*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
}
