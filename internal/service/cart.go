package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/artemkv/storefront/internal/logging"
	"github.com/artemkv/storefront/internal/models"
	"github.com/artemkv/storefront/internal/repo"
	"github.com/artemkv/storefront/internal/transport"
)

type CartService struct {
	Repo *repo.GormRepo
}

func (s *CartService) GetCart(ctx context.Context, userID uint) (*transport.CartResponse, error) {
	lines, err := s.Repo.CartView(ctx, userID)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, l := range lines {
		total += l.TotalPrice
	}

	return &transport.CartResponse{
		CartItems:   lines,
		TotalAmount: total,
		ItemCount:   len(lines),
	}, nil
}

// AddToCart increments the caller's existing line for the product or
// creates one. Stock is not checked here; a cart may exceed stock and the
// mismatch surfaces at checkout.
func (s *CartService) AddToCart(ctx context.Context, userID, productID, quantity uint) error {
	if productID == 0 {
		return fmt.Errorf("product id is required: %w", ErrValidation)
	}
	if quantity == 0 {
		return fmt.Errorf("quantity must be at least 1: %w", ErrValidation)
	}

	if _, err := s.Repo.ProductByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("product %d: %w", productID, ErrNotFound)
		}
		return err
	}

	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	return s.Repo.AddToCart(ctx, &item)
}

// UpdateQuantity sets the exact quantity of a line the caller owns. An
// absent line and a line owned by another user both come back as
// ErrNotFound; the difference is logged but never exposed.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, cartID, quantity uint) error {
	if quantity == 0 {
		return fmt.Errorf("quantity must be at least 1: %w", ErrValidation)
	}

	rows, err := s.Repo.SetQuantity(ctx, cartID, userID, quantity)
	if err != nil {
		return err
	}
	if rows == 0 {
		s.logMissingLine(ctx, "update", cartID, userID)
		return fmt.Errorf("cart item %d: %w", cartID, ErrNotFound)
	}
	return nil
}

// RemoveFromCart deletes the caller's line. Removing an already-gone line
// reports ErrNotFound rather than silently succeeding.
func (s *CartService) RemoveFromCart(ctx context.Context, userID, cartID uint) error {
	rows, err := s.Repo.DeleteFromCart(ctx, cartID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		s.logMissingLine(ctx, "remove", cartID, userID)
		return fmt.Errorf("cart item %d: %w", cartID, ErrNotFound)
	}
	return nil
}

func (s *CartService) logMissingLine(ctx context.Context, op string, cartID, userID uint) {
	l := logging.FromContext(ctx)
	owner, found, err := s.Repo.CartLineOwner(ctx, cartID)
	switch {
	case err != nil:
		l.Error("cart line owner lookup failed", "op", op, "cart_id", cartID, "error", err)
	case !found:
		l.Warn("cart line does not exist", "op", op, "cart_id", cartID, "user_id", userID)
	default:
		l.Warn("cart line owned by another user", "op", op, "cart_id", cartID, "user_id", userID, "owner_id", owner)
	}
}
