package transport

import "github.com/artemkv/storefront/internal/models"

// CartLineView is the read-time join of a cart line with its product.
// It is recomputed on every read and never persisted.
type CartLineView struct {
	CartID      uint    `json:"cart_id"`
	ProductID   uint    `json:"product_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
	Quantity    uint    `json:"quantity"`
	TotalPrice  float64 `json:"total_price"`
}

type CartResponse struct {
	CartItems   []CartLineView `json:"cartItems"`
	TotalAmount float64        `json:"totalAmount"`
	ItemCount   int            `json:"itemCount"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

type ProductsResponse struct {
	Products []models.Product `json:"products"`
}

type ProductResponse struct {
	Message string         `json:"message"`
	Product models.Product `json:"product"`
}

type SearchResponse struct {
	Total    int64            `json:"total"`
	Products []models.Product `json:"products"`
}
