package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/artemkv/storefront/internal/events"
	"github.com/artemkv/storefront/internal/logging"
	authmw "github.com/artemkv/storefront/internal/middleware/auth"
	"github.com/artemkv/storefront/internal/service"
	"github.com/artemkv/storefront/internal/transport"
)

type CartHTTP struct {
	Svc      *service.CartService
	Producer *events.Producer
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	userID, ok := authmw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, transport.ErrorResponse{Error: "Authentication required"})
	}

	resp, err := h.Svc.GetCart(ctx, userID)
	if err != nil {
		l.Error("get cart failed", "status", 500, "error", err)
		return internalError(c)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	userID, ok := authmw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, transport.ErrorResponse{Error: "Authentication required"})
	}

	var req struct {
		ProductID uint `json:"productId"`
		Quantity  *int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("add to cart rejected", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "Invalid request body"})
	}

	if req.ProductID == 0 {
		l.Warn("add to cart rejected", "status", 400)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "Product ID is required"})
	}

	// quantity is optional and defaults to 1, but an explicit value must
	// be a positive integer.
	quantity := 1
	if req.Quantity != nil {
		if *req.Quantity < 1 {
			l.Warn("add to cart rejected", "status", 400, "quantity", *req.Quantity)
			return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "Quantity must be a positive integer"})
		}
		quantity = *req.Quantity
	}

	if err := h.Svc.AddToCart(ctx, userID, req.ProductID, uint(quantity)); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("add to cart rejected", "status", 404, "product_id", req.ProductID)
			return c.JSON(http.StatusNotFound, transport.ErrorResponse{Error: "Product not found"})
		case errors.Is(err, service.ErrValidation):
			l.Warn("add to cart rejected", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "Invalid request body"})
		default:
			l.Error("add to cart failed", "status", 500, "error", err)
			return internalError(c)
		}
	}

	h.publish(c, map[string]any{
		"type":      "cart_item_added",
		"userID":    userID,
		"productID": req.ProductID,
		"quantity":  quantity,
	})
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Item added to cart successfully"})
}

func (h *CartHTTP) UpdateCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update")

	userID, ok := authmw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, transport.ErrorResponse{Error: "Authentication required"})
	}

	cartID, err := strconv.Atoi(c.Param("id"))
	if err != nil || cartID <= 0 {
		l.Warn("update cart item rejected", "status", 400, "id", c.Param("id"))
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "Invalid cart item id"})
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update cart item rejected", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "Invalid request body"})
	}
	if req.Quantity < 1 {
		l.Warn("update cart item rejected", "status", 400, "quantity", req.Quantity)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "Quantity must be at least 1"})
	}

	if err := h.Svc.UpdateQuantity(ctx, userID, uint(cartID), uint(req.Quantity)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("update cart item rejected", "status", 404, "cart_id", cartID)
			return c.JSON(http.StatusNotFound, transport.ErrorResponse{Error: "Cart item not found"})
		}
		l.Error("update cart item failed", "status", 500, "error", err)
		return internalError(c)
	}

	h.publish(c, map[string]any{
		"type":     "cart_item_updated",
		"userID":   userID,
		"cartID":   cartID,
		"quantity": req.Quantity,
	})
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Cart item updated successfully"})
}

func (h *CartHTTP) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	userID, ok := authmw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, transport.ErrorResponse{Error: "Authentication required"})
	}

	cartID, err := strconv.Atoi(c.Param("id"))
	if err != nil || cartID <= 0 {
		l.Warn("remove cart item rejected", "status", 400, "id", c.Param("id"))
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "Invalid cart item id"})
	}

	if err := h.Svc.RemoveFromCart(ctx, userID, uint(cartID)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("remove cart item rejected", "status", 404, "cart_id", cartID)
			return c.JSON(http.StatusNotFound, transport.ErrorResponse{Error: "Cart item not found"})
		}
		l.Error("remove cart item failed", "status", 500, "error", err)
		return internalError(c)
	}

	h.publish(c, map[string]any{
		"type":   "cart_item_removed",
		"userID": userID,
		"cartID": cartID,
	})
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Cart item removed successfully"})
}
