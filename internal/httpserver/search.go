package httpserver

import (
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/artemkv/storefront/internal/logging"
	"github.com/artemkv/storefront/internal/search"
	"github.com/artemkv/storefront/internal/transport"
)

type SearchHTTP struct {
	ES    *elasticsearch.Client
	Index string
}

func (h *SearchHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "products.search")

	if h.ES == nil {
		return c.JSON(http.StatusServiceUnavailable, transport.ErrorResponse{Error: "Search is not configured"})
	}

	q := c.QueryParam("q")
	if q == "" {
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "Query parameter q is required"})
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	from, size := paginate(page, size)

	total, products, err := search.Search(ctx, h.ES, h.Index, q, from, size)
	if err != nil {
		l.Error("search failed", "status", 500, "error", err)
		return internalError(c)
	}

	return c.JSON(http.StatusOK, transport.SearchResponse{Total: total, Products: products})
}

func paginate(page, size int) (from, limit int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 10
	}
	return (page - 1) * size, size
}
