package storage

import (
	"gorm.io/gorm"

	"github.com/artemkv/storefront/internal/models"
)

var sampleProducts = []models.Product{
	{
		Name:        "Wireless Headphones",
		Description: "High-quality wireless headphones with noise cancellation",
		Price:       199.99,
		Category:    "Electronics",
		ImageURL:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400",
		Stock:       50,
	},
	{
		Name:        "Smart Watch",
		Description: "Feature-rich smartwatch with health monitoring",
		Price:       299.99,
		Category:    "Electronics",
		ImageURL:    "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400",
		Stock:       30,
	},
	{
		Name:        "Coffee Maker",
		Description: "Automatic coffee maker with programmable settings",
		Price:       89.99,
		Category:    "Home & Kitchen",
		ImageURL:    "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=400",
		Stock:       25,
	},
	{
		Name:        "Running Shoes",
		Description: "Comfortable running shoes for all terrains",
		Price:       129.99,
		Category:    "Sports",
		ImageURL:    "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400",
		Stock:       40,
	},
	{
		Name:        "Laptop Backpack",
		Description: "Durable laptop backpack with multiple compartments",
		Price:       59.99,
		Category:    "Accessories",
		ImageURL:    "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400",
		Stock:       35,
	},
	{
		Name:        "Bluetooth Speaker",
		Description: "Portable Bluetooth speaker with excellent sound quality",
		Price:       79.99,
		Category:    "Electronics",
		ImageURL:    "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=400",
		Stock:       60,
	},
}

// Seed inserts the sample catalog once, on an empty products table only.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&sampleProducts).Error
}
