package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mohamedsham20017/ecommerce-website/internal/domains/catalog/domain"
	"github.com/mohamedsham20017/ecommerce-website/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists the catalog in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&categoryRecord{}, &productRecord{})
	}
	return repo
}

type categoryRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Title     string    `gorm:"column:title;type:varchar(255)"`
	Slug      string    `gorm:"column:slug;type:varchar(255);uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (categoryRecord) TableName() string { return "categories" }

type productRecord struct {
	ID          int64          `gorm:"primaryKey;autoIncrement;column:id"`
	CategoryID  int64          `gorm:"column:category_id;index"`
	Title       string         `gorm:"column:title;type:varchar(255)"`
	Description string         `gorm:"column:description;type:text"`
	PriceCents  int64          `gorm:"column:price_cents"`
	ImageURLs   pq.StringArray `gorm:"column:image_urls;type:text[]"`
	Available   bool           `gorm:"column:available"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

// SaveCategory upserts a category keyed by slug.
func (r *Repository) SaveCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.New("category is nil")
	}
	record := categoryRecord{ID: category.ID, Title: category.Title, Slug: category.Slug}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "updated_at"}),
		}).
		Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetCategoryBySlug(ctx, record.Slug)
}

// ListCategories returns all categories sorted by title.
func (r *Repository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []categoryRecord
	if err := r.db.WithContext(ctx).Order("title ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	categories := make([]*domain.Category, 0, len(records))
	for i := range records {
		categories = append(categories, records[i].toDomain())
	}
	return categories, nil
}

func (r *Repository) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record categoryRecord
	if err := r.db.WithContext(ctx).First(&record, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// SaveProduct inserts or updates a product.
func (r *Repository) SaveProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("product is nil")
	}
	record := toProductRecord(product)
	if err := r.db.WithContext(ctx).Save(&record).Error; err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) ListProductsByCategory(ctx context.Context, categoryID int64) ([]*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []productRecord
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	products := make([]*domain.Product, 0, len(records))
	for i := range records {
		products = append(products, records[i].toDomain())
	}
	return products, nil
}

func (r *Repository) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record productRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres catalog repository not configured")
	}
	return nil
}

func (r categoryRecord) toDomain() *domain.Category {
	return &domain.Category{ID: r.ID, Title: r.Title, Slug: r.Slug}
}

func toProductRecord(product *domain.Product) productRecord {
	return productRecord{
		ID:          product.ID,
		CategoryID:  product.CategoryID,
		Title:       product.Title,
		Description: product.Description,
		PriceCents:  product.PriceCents,
		ImageURLs:   pq.StringArray(product.ImageURLs),
		Available:   product.Available,
	}
}

func (r productRecord) toDomain() *domain.Product {
	return &domain.Product{
		ID:          r.ID,
		CategoryID:  r.CategoryID,
		Title:       r.Title,
		Description: r.Description,
		PriceCents:  r.PriceCents,
		ImageURLs:   []string(r.ImageURLs),
		Available:   r.Available,
	}
}
