package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/artemkv/storefront/internal/events"
	"github.com/artemkv/storefront/internal/logging"
	"github.com/artemkv/storefront/internal/models"
	"github.com/artemkv/storefront/internal/repo"
	"github.com/artemkv/storefront/internal/service"
	"github.com/artemkv/storefront/internal/transport"
)

type ProductHTTP struct {
	Svc      *service.CatalogService
	Producer *events.Producer
}

func (h *ProductHTTP) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "products.list")

	filter := repo.ProductFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}
	if v := c.QueryParam("minPrice"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &p
		}
	}
	if v := c.QueryParam("maxPrice"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &p
		}
	}

	products, err := h.Svc.ListProducts(ctx, filter)
	if err != nil {
		l.Error("list products failed", "status", 500, "error", err)
		return internalError(c)
	}

	return c.JSON(http.StatusOK, transport.ProductsResponse{Products: products})
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "products.create")

	var req struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Category    string  `json:"category"`
		ImageURL    string  `json:"image_url"`
		Stock       uint    `json:"stock"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("create product rejected", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "Invalid request body"})
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
	}
	if err := h.Svc.CreateProduct(ctx, &product); err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create product rejected", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "Name, price, and category are required"})
		}
		l.Error("create product failed", "status", 500, "error", err)
		return internalError(c)
	}

	h.publish(c, map[string]any{
		"type":      "product_created",
		"productID": product.ID,
		"name":      product.Name,
	})

	l.Info("product created", "product_id", product.ID)
	return c.JSON(http.StatusCreated, transport.ProductResponse{
		Message: "Product created successfully",
		Product: product,
	})
}
