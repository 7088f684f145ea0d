package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace
// adapter-level automigrate when a single migration point is preferred.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&orderRecord{},
		&idempotencyRecord{},
		&userRecord{},
		&sessionRecord{},
		&categoryRecord{},
		&productRecord{},
	)
}

// Order schema mirrors the orders Postgres adapter.
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

// Idempotency schema mirrors the orders idempotency store.
type idempotencyRecord struct {
	Key         string    `gorm:"primaryKey;column:key;size:255"`
	RequestHash string    `gorm:"column:request_hash;size:128"`
	OrderID     int64     `gorm:"column:order_id"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (idempotencyRecord) TableName() string { return "order_idempotency_keys" }

// User schema mirrors the users Postgres adapter.
type userRecord struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Username     string    `gorm:"column:username;uniqueIndex"`
	DisplayName  string    `gorm:"column:display_name"`
	Email        string    `gorm:"column:email"`
	PasswordHash string    `gorm:"column:password_hash"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userRecord) TableName() string { return "users" }

// Session schema mirrors the session store.
type sessionRecord struct {
	Token     string     `gorm:"primaryKey;column:token;size:512"`
	Username  string     `gorm:"column:username;index"`
	ExpiresAt *time.Time `gorm:"column:expires_at;index"`
	CreatedAt time.Time  `gorm:"column:created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at"`
}

func (sessionRecord) TableName() string { return "user_sessions" }

// Category schema mirrors the catalog Postgres adapter.
type categoryRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Title     string    `gorm:"column:title;type:varchar(255)"`
	Slug      string    `gorm:"column:slug;type:varchar(255);uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (categoryRecord) TableName() string { return "categories" }

// Product schema mirrors the catalog Postgres adapter.
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
