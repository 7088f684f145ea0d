package domain

import (
	"errors"
	"fmt"
	"time"
)

// TimeSlot enumerates the delivery time slots offered at checkout.
type TimeSlot string

const (
	Slot10AM TimeSlot = "10 AM"
	Slot11AM TimeSlot = "11 AM"
	Slot12PM TimeSlot = "12 PM"
)

// Location enumerates the cities we deliver to.
type Location string

const (
	LocationColombo Location = "Colombo"
	LocationGalle   Location = "Galle"
	LocationKandy   Location = "Kandy"
)

// Product enumerates the purchasable items.
type Product string

const (
	ProductPhone  Product = "Phone"
	ProductLaptop Product = "Laptop"
	ProductTablet Product = "Tablet"
)

// TimeSlots lists the offered slots in checkout-form order.
func TimeSlots() []TimeSlot {
	return []TimeSlot{Slot10AM, Slot11AM, Slot12PM}
}

// Locations lists the served delivery cities in checkout-form order.
func Locations() []Location {
	return []Location{LocationColombo, LocationGalle, LocationKandy}
}

// Products lists the purchasable items in checkout-form order.
func Products() []Product {
	return []Product{ProductPhone, ProductLaptop, ProductTablet}
}

var (
	ErrEmptyOwner      = errors.New("order owner is required")
	ErrPastDate        = errors.New("purchase date must not be in the past")
	ErrSundayDate      = errors.New("purchases cannot be scheduled on a Sunday")
	ErrInvalidTimeSlot = errors.New("delivery time slot is not offered")
	ErrInvalidLocation = errors.New("delivery location is not served")
	ErrInvalidProduct  = errors.New("product is not available for purchase")
	ErrInvalidQuantity = errors.New("quantity must be at least one")
)

// Order is a purchase request tied to exactly one owner identity.
// Orders are immutable once persisted: there are no update or transfer
// operations, only creation and owner-scoped listing.
type Order struct {
	ID        int64
	Owner     string
	Email     string
	Date      time.Time
	Time      TimeSlot
	Location  Location
	Product   Product
	Quantity  int32
	Message   string
	CreatedAt time.Time
}

// NewOrder validates the submitted fields against today and constructs the
// aggregate. Validation is fail-fast: the first violated rule wins.
func NewOrder(owner, email string, date time.Time, slot TimeSlot, location Location, product Product, quantity int32, message string, today time.Time) (*Order, error) {
	if owner == "" {
		return nil, ErrEmptyOwner
	}
	if err := ValidateDate(date, today); err != nil {
		return nil, err
	}
	order := &Order{
		Owner:    owner,
		Email:    email,
		Date:     truncateToDay(date),
		Time:     slot,
		Location: location,
		Product:  product,
		Quantity: quantity,
		Message:  message,
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// ValidateDate rejects calendar days before today and Sundays. Only the
// calendar day matters; time-of-day and zone on either argument are
// ignored, so a date parsed in UTC compares cleanly against a local
// clock.
func ValidateDate(date, today time.Time) error {
	if truncateToDay(date).Before(truncateToDay(today)) {
		return ErrPastDate
	}
	if date.Weekday() == time.Sunday {
		return ErrSundayDate
	}
	return nil
}

// Validate enforces the field invariants. The date rule is creation-time
// only and is deliberately not re-checked here.
func (o *Order) Validate() error {
	if o.Owner == "" {
		return ErrEmptyOwner
	}
	if !isValidTimeSlot(o.Time) {
		return ErrInvalidTimeSlot
	}
	if !isValidLocation(o.Location) {
		return ErrInvalidLocation
	}
	if !isValidProduct(o.Product) {
		return ErrInvalidProduct
	}
	if o.Quantity < 1 {
		return ErrInvalidQuantity
	}
	return nil
}

// Reference is the human-facing order identifier used on confirmations.
func (o *Order) Reference() string {
	return fmt.Sprintf("ORD-%06d", o.ID)
}

func isValidTimeSlot(slot TimeSlot) bool {
	switch slot {
	case Slot10AM, Slot11AM, Slot12PM:
		return true
	default:
		return false
	}
}

func isValidLocation(location Location) bool {
	switch location {
	case LocationColombo, LocationGalle, LocationKandy:
		return true
	default:
		return false
	}
}

func isValidProduct(product Product) bool {
	switch product {
	case ProductPhone, ProductLaptop, ProductTablet:
		return true
	default:
		return false
	}
}

// truncateToDay rebuilds the calendar components in UTC so that dates
// carrying different zones compare by day, not by instant.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
