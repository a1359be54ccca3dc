package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	Name         string    `gorm:"not null"                 json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null"                 json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null"                 json:"price"`
	Category    string    `gorm:"not null;index"           json:"category"`
	ImageURL    string    `json:"image_url"`
	Stock       uint      `gorm:"default:0"                json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
}

// CartItem is one user's chosen quantity of one product. The pair
// (user_id, product_id) is unique, so repeated adds grow the quantity of
// a single row instead of creating duplicates.
type CartItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"               json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_product;not null"  json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_user_product;not null"  json:"product_id"`
	Quantity  uint      `gorm:"default:1;check:quantity>0"             json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
