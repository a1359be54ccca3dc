package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/artemkv/storefront/internal/models"
	"github.com/artemkv/storefront/internal/transport"
)

// CartView joins the user's cart lines with the catalog, most recent line
// first. total_price is computed in the query, never stored.
func (r *GormRepo) CartView(ctx context.Context, userID uint) ([]transport.CartLineView, error) {
	// non-nil so an empty cart serializes as [], never null
	rows := []transport.CartLineView{}
	err := r.DB.WithContext(ctx).
		Table("cart_items").
		Select(`cart_items.id AS cart_id,
			products.id AS product_id,
			products.name,
			products.description,
			products.price,
			products.category,
			products.image_url,
			cart_items.quantity,
			(products.price * cart_items.quantity) AS total_price`).
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.created_at DESC, cart_items.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// AddToCart is an atomic insert-or-increment: the UPDATE and the INSERT
// fallback run inside one transaction, so two concurrent adds of the same
// product cannot both take the insert path and trip the unique index.
func (r *GormRepo) AddToCart(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CartItem{}).
			Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).
			Update("quantity", gorm.Expr("quantity + ?", item.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return tx.Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).
				First(item).Error
		}
		return tx.Create(item).Error
	})
}

// SetQuantity sets the exact quantity of the caller's line. Zero rows
// affected means the line is absent or owned by someone else; both look
// the same to the caller.
func (r *GormRepo) SetQuantity(ctx context.Context, cartID, userID, quantity uint) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", cartID, userID).
		Update("quantity", quantity)
	return res.RowsAffected, res.Error
}

func (r *GormRepo) DeleteFromCart(ctx context.Context, cartID, userID uint) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", cartID, userID).
		Delete(&models.CartItem{})
	return res.RowsAffected, res.Error
}

// CartLineOwner reports who owns a line, for log-level diagnostics only.
func (r *GormRepo) CartLineOwner(ctx context.Context, cartID uint) (uint, bool, error) {
	var item models.CartItem
	err := r.DB.WithContext(ctx).Select("user_id").First(&item, cartID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return item.UserID, true, nil
}
