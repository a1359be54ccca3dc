package repo

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/artemkv/storefront/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.CartItem{}))
	return &GormRepo{DB: db}
}

func TestAddToCartUpsert(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.DB.Create(&models.Product{Name: "Widget", Price: 10, Category: "Electronics"}).Error)

	item := models.CartItem{UserID: 1, ProductID: 1, Quantity: 2}
	require.NoError(t, r.AddToCart(ctx, &item))

	again := models.CartItem{UserID: 1, ProductID: 1, Quantity: 3}
	require.NoError(t, r.AddToCart(ctx, &again))

	var items []models.CartItem
	require.NoError(t, r.DB.Find(&items).Error)
	require.Len(t, items, 1)
	require.Equal(t, uint(5), items[0].Quantity)
}

func TestAddToCartSeparateLinesPerUser(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.AddToCart(ctx, &models.CartItem{UserID: 1, ProductID: 1, Quantity: 1}))
	require.NoError(t, r.AddToCart(ctx, &models.CartItem{UserID: 2, ProductID: 1, Quantity: 1}))

	var count int64
	require.NoError(t, r.DB.Model(&models.CartItem{}).Count(&count).Error)
	require.EqualValues(t, 2, count)
}

func TestSetQuantityFiltersByOwner(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	item := models.CartItem{UserID: 1, ProductID: 1, Quantity: 2}
	require.NoError(t, r.DB.Create(&item).Error)

	rows, err := r.SetQuantity(ctx, item.ID, 2, 9)
	require.NoError(t, err)
	require.Zero(t, rows)

	rows, err = r.SetQuantity(ctx, item.ID, 1, 9)
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)

	var got models.CartItem
	require.NoError(t, r.DB.First(&got, item.ID).Error)
	require.Equal(t, uint(9), got.Quantity)
}

func TestDeleteFromCartFiltersByOwner(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	item := models.CartItem{UserID: 1, ProductID: 1, Quantity: 2}
	require.NoError(t, r.DB.Create(&item).Error)

	rows, err := r.DeleteFromCart(ctx, item.ID, 2)
	require.NoError(t, err)
	require.Zero(t, rows)

	rows, err = r.DeleteFromCart(ctx, item.ID, 1)
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)

	rows, err = r.DeleteFromCart(ctx, item.ID, 1)
	require.NoError(t, err)
	require.Zero(t, rows)
}

func TestCartViewComputesTotals(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.DB.Create(&models.Product{Name: "Widget", Price: 19.99, Category: "Electronics"}).Error)
	require.NoError(t, r.DB.Create(&models.CartItem{UserID: 1, ProductID: 1, Quantity: 3}).Error)

	lines, err := r.CartView(ctx, 1)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, "Widget", lines[0].Name)
	require.Equal(t, uint(3), lines[0].Quantity)
	require.InDelta(t, 59.97, lines[0].TotalPrice, 1e-9)
}

func TestCartViewScopedToUser(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.DB.Create(&models.Product{Name: "Widget", Price: 10, Category: "Electronics"}).Error)
	require.NoError(t, r.DB.Create(&models.CartItem{UserID: 1, ProductID: 1, Quantity: 1}).Error)
	require.NoError(t, r.DB.Create(&models.CartItem{UserID: 2, ProductID: 1, Quantity: 5}).Error)

	lines, err := r.CartView(ctx, 1)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, uint(1), lines[0].Quantity)
}

func TestCartLineOwner(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	item := models.CartItem{UserID: 7, ProductID: 1, Quantity: 1}
	require.NoError(t, r.DB.Create(&item).Error)

	owner, found, err := r.CartLineOwner(ctx, item.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, uint(7), owner)

	_, found, err = r.CartLineOwner(ctx, 999)
	require.NoError(t, err)
	require.False(t, found)
}
