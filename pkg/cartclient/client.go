// Package cartclient holds a client-local mirror of one user's cart and
// keeps it authoritative relative to the server: every mutation is
// followed by an unconditional full refetch before it returns, so the
// visible snapshot always equals server state as of the last successful
// refresh.
package cartclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

var (
	ErrUnauthenticated = errors.New("cartclient: not authenticated")
	ErrNotFound        = errors.New("cartclient: not found")
	ErrInvalidInput    = errors.New("cartclient: invalid input")
)

// CartItem mirrors one line of the server's cart view.
type CartItem struct {
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

type cartPayload struct {
	CartItems   []CartItem `json:"cartItems"`
	TotalAmount float64    `json:"totalAmount"`
	ItemCount   int        `json:"itemCount"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client

	mu          sync.Mutex
	token       string
	items       []CartItem
	totalAmount float64
	itemCount   int
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// SetToken installs the bearer token. Clearing it (empty string) resets
// the snapshot locally with no network call.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	if token == "" {
		c.items = nil
		c.totalAmount = 0
		c.itemCount = 0
	}
}

// Refresh refetches the full cart and replaces the snapshot.
func (c *Client) Refresh(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshLocked(ctx)
}

// AddToCart adds quantity of a product, then refetches the cart. Pass
// quantity 0 to use the server default of 1.
func (c *Client) AddToCart(ctx context.Context, productID, quantity uint) error {
	body := map[string]any{"productId": productID}
	if quantity > 0 {
		body["quantity"] = quantity
	}
	return c.mutate(ctx, http.MethodPost, "/api/cart", body)
}

// UpdateCartItem sets the exact quantity of a cart line, then refetches.
func (c *Client) UpdateCartItem(ctx context.Context, cartID, quantity uint) error {
	return c.mutate(ctx, http.MethodPut, fmt.Sprintf("/api/cart/%d", cartID), map[string]any{"quantity": quantity})
}

// RemoveFromCart deletes a cart line, then refetches.
func (c *Client) RemoveFromCart(ctx context.Context, cartID uint) error {
	return c.mutate(ctx, http.MethodDelete, fmt.Sprintf("/api/cart/%d", cartID), nil)
}

// Items returns a copy of the current snapshot.
func (c *Client) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Client) TotalAmount() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalAmount
}

func (c *Client) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.itemCount
}

// mutate holds the lock for the whole mutation+refresh cycle, so
// mutations from one client are serialized and each one observes its own
// refetch before the next begins.
func (c *Client) mutate(ctx context.Context, method, path string, body map[string]any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token == "" {
		return ErrUnauthenticated
	}

	resp, err := c.doLocked(ctx, method, path, body)
	if err != nil {
		return err
	}
	// drain before closing so the keep-alive connection goes back to the
	// pool instead of being torn down
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if err := statusError(resp); err != nil {
		return err
	}

	return c.refreshLocked(ctx)
}

func (c *Client) refreshLocked(ctx context.Context) error {
	if c.token == "" {
		c.items = nil
		c.totalAmount = 0
		c.itemCount = 0
		return nil
	}

	resp, err := c.doLocked(ctx, http.MethodGet, "/api/cart", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	defer io.Copy(io.Discard, resp.Body)
	if err := statusError(resp); err != nil {
		return err
	}

	var payload cartPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("decode cart: %w", err)
	}

	c.items = payload.CartItems
	c.totalAmount = payload.TotalAmount
	c.itemCount = payload.ItemCount
	return nil
}

func (c *Client) doLocked(ctx context.Context, method, path string, body map[string]any) (*http.Response, error) {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	return resp, nil
}

// statusError maps HTTP failures to categorized errors so callers can
// tell "log in again" from "retry later".
func statusError(resp *http.Response) error {
	switch {
	case resp.StatusCode < 400:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthenticated
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusBadRequest:
		return ErrInvalidInput
	default:
		return fmt.Errorf("request failed with status: %d", resp.StatusCode)
	}
}
