// Package gateway is the REST client for the order-management backend, the
// source of truth for products, orders, stock and totals.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"orderconsole/internal/domain"
)

// Client talks to the backend API rooted at baseURL (e.g.
// "http://localhost:8080/api").
type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

// New builds a Client. httpClient may be nil, in which case a client with a
// 10s timeout is used.
func New(baseURL string, httpClient *http.Client, logger *log.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: baseURL, http: httpClient, logger: logger}
}

// PageQuery carries the backend-side paging and sorting parameters.
type PageQuery struct {
	Page    int
	Size    int
	SortBy  string
	SortDir string
}

func (q PageQuery) values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("size", strconv.Itoa(q.Size))
	if q.SortBy != "" {
		v.Set("sortBy", q.SortBy)
	}
	if q.SortDir != "" {
		v.Set("sortDirection", q.SortDir)
	}
	return v
}

// Orders fetches one page of orders.
func (c *Client) Orders(ctx context.Context, q PageQuery) (domain.Page[domain.Order], error) {
	var wire pageResponse[OrderResponse]
	if err := c.do(ctx, http.MethodGet, "/orders?"+q.values().Encode(), nil, &wire); err != nil {
		return domain.Page[domain.Order]{}, err
	}
	return toOrderPage(wire, q), nil
}

// Order fetches a single order by id.
func (c *Client) Order(ctx context.Context, id int64) (domain.Order, error) {
	var wire OrderResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, &wire); err != nil {
		return domain.Order{}, err
	}
	return wire.toOrder(), nil
}

// OrdersByStatus fetches every order in the given wire status.
func (c *Client) OrdersByStatus(ctx context.Context, status string) ([]domain.Order, error) {
	var wire []OrderResponse
	if err := c.do(ctx, http.MethodGet, "/orders/status/"+url.PathEscape(status), nil, &wire); err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0, len(wire))
	for _, w := range wire {
		orders = append(orders, w.toOrder())
	}
	return orders, nil
}

// CreateOrder submits a new order. The backend validates stock, decrements it
// and computes the total.
func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (domain.Order, error) {
	var wire OrderResponse
	if err := c.do(ctx, http.MethodPost, "/orders", req, &wire); err != nil {
		return domain.Order{}, err
	}
	return wire.toOrder(), nil
}

// UpdateOrderStatus moves an order to the given wire status.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status string) (domain.Order, error) {
	var wire OrderResponse
	path := fmt.Sprintf("/orders/%d/status?status=%s", id, url.QueryEscape(status))
	if err := c.do(ctx, http.MethodPatch, path, nil, &wire); err != nil {
		return domain.Order{}, err
	}
	return wire.toOrder(), nil
}

// Products fetches the whole unpaged catalog.
func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ProductsPage fetches one page of the catalog.
func (c *Client) ProductsPage(ctx context.Context, q PageQuery) (domain.Page[domain.Product], error) {
	var wire pageResponse[domain.Product]
	if err := c.do(ctx, http.MethodGet, "/products?"+q.values().Encode(), nil, &wire); err != nil {
		return domain.Page[domain.Product]{}, err
	}
	return domain.Page[domain.Product]{
		Content:       wire.Content,
		Page:          wire.Number,
		Size:          pageSize(wire.Size, q.Size),
		TotalPages:    wire.TotalPages,
		TotalElements: wire.TotalElements,
	}, nil
}

// CreateProduct adds a product to the catalog.
func (c *Client) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	var created domain.Product
	if err := c.do(ctx, http.MethodPost, "/products", p, &created); err != nil {
		return domain.Product{}, err
	}
	return created, nil
}

// UpdateProduct replaces the product with the given id.
func (c *Client) UpdateProduct(ctx context.Context, id int64, p domain.Product) (domain.Product, error) {
	var updated domain.Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), p, &updated); err != nil {
		return domain.Product{}, err
	}
	return updated, nil
}

// DeleteProduct removes the product with the given id.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		if c.logger != nil {
			c.logger.Printf("gateway %s %s -> %d: %s", method, path, resp.StatusCode, detail)
		}
		return statusError(resp.StatusCode, method, path)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response for %s %s: %w", method, path, err)
	}
	return nil
}

// statusError maps HTTP failure classes onto the domain error taxonomy:
// 400 invalid payload, 404 missing entity, everything else generic.
func statusError(code int, method, path string) error {
	switch code {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s %s", domain.ErrInvalid, method, path)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", domain.ErrNotFound, method, path)
	default:
		return fmt.Errorf("%w: %s %s: status %d", domain.ErrUnavailable, method, path, code)
	}
}

func pageSize(got, requested int) int {
	if got > 0 {
		return got
	}
	return requested
}
