package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/artemkv/storefront/internal/events"
	"github.com/artemkv/storefront/internal/logging"
	"github.com/artemkv/storefront/internal/transport"
)

// internalError is the only 500 body callers ever see; the underlying
// failure stays in the server log.
func internalError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "Internal server error"})
}

func (h *CartHTTP) publish(c echo.Context, event map[string]any) {
	publishEvent(c, h.Producer, events.TopicCartEvents, fmt.Sprint(event["userID"]), event)
}

func (h *AuthHTTP) publish(c echo.Context, event map[string]any) {
	publishEvent(c, h.Producer, events.TopicUserEvents, fmt.Sprint(event["userID"]), event)
}

func (h *ProductHTTP) publish(c echo.Context, event map[string]any) {
	publishEvent(c, h.Producer, events.TopicProductEvents, fmt.Sprint(event["productID"]), event)
}

func publishEvent(c echo.Context, p *events.Producer, topic, key string, event map[string]any) {
	if !p.Enabled() {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish failed", "topic", topic, "error", err)
	}
}
