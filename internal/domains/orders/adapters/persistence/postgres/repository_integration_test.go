//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/domain"
	"github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/ports"
	"github.com/mohamedsham20017/ecommerce-website/internal/platform/migrations"
)

func setupOrdersPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("shop_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func newTestOrder(t *testing.T, owner string) *domain.Order {
	t.Helper()
	today := time.Now()
	order, err := domain.NewOrder(owner, owner+"@example.com",
		time.Date(2099, time.January, 2, 0, 0, 0, 0, time.UTC),
		domain.Slot10AM, domain.LocationColombo, domain.ProductPhone, 1, "", today)
	require.NoError(t, err)
	return order
}

func TestRepository_SaveAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, newTestOrder(t, "alice"))
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	fetched, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", fetched.Owner)
	assert.Equal(t, domain.ProductPhone, fetched.Product)

	_, err = repo.GetByID(ctx, saved.ID+100)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_FindByOwnerIsScopedAndOrdered(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	first, err := repo.Save(ctx, newTestOrder(t, "alice"))
	require.NoError(t, err)
	second, err := repo.Save(ctx, newTestOrder(t, "alice"))
	require.NoError(t, err)
	_, err = repo.Save(ctx, newTestOrder(t, "bob"))
	require.NoError(t, err)

	orders, err := repo.FindByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)
	for _, o := range orders {
		assert.Equal(t, "alice", o.Owner)
	}

	none, err := repo.FindByOwner(ctx, "carol")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRepository_DeleteOlderThan(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.Save(ctx, newTestOrder(t, "alice"))
	require.NoError(t, err)

	removed, err := repo.DeleteOlderThan(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, removed)

	removed, err = repo.DeleteOlderThan(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	orders, err := repo.FindByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestIdempotencyStore_SaveAndConflict(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	store := NewIdempotencyStore(db)
	ctx := context.Background()

	record := ports.IdempotencyRecord{Key: "key-1", RequestHash: "hash-a", OrderID: 1}
	saved, err := store.Save(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, "hash-a", saved.RequestHash)

	replay, err := store.Save(ctx, record)
	require.NoError(t, err)
	assert.EqualValues(t, 1, replay.OrderID)

	conflicting := ports.IdempotencyRecord{Key: "key-1", RequestHash: "hash-b", OrderID: 2}
	stored, err := store.Save(ctx, conflicting)
	require.ErrorIs(t, err, ports.ErrIdempotencyConflict)
	assert.Equal(t, "hash-a", stored.RequestHash)
}
