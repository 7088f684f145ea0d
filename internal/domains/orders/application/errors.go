package application

import (
	"errors"
	"fmt"

	"github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/domain"
)

var (
	// ErrInvalidInput signals the submission violated a workflow rule.
	// Rejections carry the violated rule as a wrapped sentinel.
	ErrInvalidInput = errors.New("invalid order submission")

	// ErrUnparsableDate signals the date field was not a calendar date.
	ErrUnparsableDate = errors.New("purchase date is not a valid calendar date")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUnparsableDate) ||
		errors.Is(err, domain.ErrEmptyOwner) ||
		errors.Is(err, domain.ErrPastDate) ||
		errors.Is(err, domain.ErrSundayDate) ||
		errors.Is(err, domain.ErrInvalidTimeSlot) ||
		errors.Is(err, domain.ErrInvalidLocation) ||
		errors.Is(err, domain.ErrInvalidProduct) ||
		errors.Is(err, domain.ErrInvalidQuantity) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
