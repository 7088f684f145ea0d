package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/domain"
	"github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&orderRecord{})
	}
	return repo
}

// orderRecord maps the order aggregate to a relational table.
type orderRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Owner     string    `gorm:"column:owner;type:varchar(255);index:idx_orders_owner"`
	Email     string    `gorm:"column:email;type:varchar(255)"`
	Date      time.Time `gorm:"column:purchase_date"`
	TimeSlot  string    `gorm:"column:time_slot;type:varchar(16)"`
	Location  string    `gorm:"column:location;type:varchar(64)"`
	Product   string    `gorm:"column:product;type:varchar(64)"`
	Quantity  int32     `gorm:"column:quantity"`
	Message   string    `gorm:"column:message;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
}

func (orderRecord) TableName() string { return "orders" }

// Save inserts a new order. Orders are immutable, so this is insert-only;
// the generated identifier is reflected back onto the returned order.
func (r *Repository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record := toRecord(order)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

// GetByID fetches an order by identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// FindByOwner returns the owner's orders in creation order.
func (r *Repository) FindByOwner(ctx context.Context, owner string) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).
		Where("owner = ?", owner).
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

// DeleteOlderThan removes orders created before the cutoff and reports how
// many rows were deleted. Used by the retention sweep.
func (r *Repository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	result := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&orderRecord{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) orderRecord {
	return orderRecord{
		ID:       order.ID,
		Owner:    order.Owner,
		Email:    order.Email,
		Date:     order.Date,
		TimeSlot: string(order.Time),
		Location: string(order.Location),
		Product:  string(order.Product),
		Quantity: order.Quantity,
		Message:  order.Message,
	}
}

func (r orderRecord) toDomain() *domain.Order {
	return &domain.Order{
		ID:        r.ID,
		Owner:     r.Owner,
		Email:     r.Email,
		Date:      r.Date,
		Time:      domain.TimeSlot(r.TimeSlot),
		Location:  domain.Location(r.Location),
		Product:   domain.Product(r.Product),
		Quantity:  r.Quantity,
		Message:   r.Message,
		CreatedAt: r.CreatedAt,
	}
}
