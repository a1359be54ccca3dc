package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/artemkv/storefront/internal/middleware/auth"
)

type Deps struct {
	CartHandler    *CartHTTP
	AuthHandler    *AuthHTTP
	ProductHandler *ProductHTTP
	SearchHandler  *SearchHTTP
	JWTSecret      []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	api := e.Group("/api")

	api.POST("/auth/signup", d.AuthHandler.Signup)
	api.POST("/auth/login", d.AuthHandler.Login)

	api.GET("/products", d.ProductHandler.ListProducts)
	api.POST("/products", d.ProductHandler.CreateProduct)
	api.GET("/search", d.SearchHandler.Search)

	cart := api.Group("/cart", authmw.RequireAuth(d.JWTSecret))
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.PUT("/:id", d.CartHandler.UpdateCartItem)
	cart.DELETE("/:id", d.CartHandler.RemoveFromCart)
}
