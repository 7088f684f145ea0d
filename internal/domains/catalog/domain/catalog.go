package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyTitle   = errors.New("title is required")
	ErrInvalidPrice = errors.New("price must not be negative")
)

// Category groups products for browsing and navigation.
type Category struct {
	ID    int64
	Title string
	Slug  string
}

// NewCategory validates and constructs a category, deriving the slug from
// the title when none is given.
func NewCategory(title, slug string) (*Category, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		slug = Slugify(title)
	}
	return &Category{Title: title, Slug: slug}, nil
}

// Product is a catalog item shown on the storefront.
type Product struct {
	ID          int64
	CategoryID  int64
	Title       string
	Description string
	PriceCents  int64
	ImageURLs   []string
	Available   bool
}

// NewProduct validates and constructs a product.
func NewProduct(categoryID int64, title, description string, priceCents int64, imageURLs []string) (*Product, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if priceCents < 0 {
		return nil, ErrInvalidPrice
	}
	return &Product{
		CategoryID:  categoryID,
		Title:       title,
		Description: strings.TrimSpace(description),
		PriceCents:  priceCents,
		ImageURLs:   imageURLs,
		Available:   true,
	}, nil
}

// Slugify lowercases a title and collapses non-alphanumerics into hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
