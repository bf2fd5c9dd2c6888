// Package cart is the client-local staging collection for order creation.
// Nothing here is persisted or synchronized with the backend until Submit.
package cart

import (
	"context"
	"sync"

	"orderconsole/internal/domain"
	"orderconsole/internal/gateway"
)

// Submitter places the staged order with the backend.
type Submitter interface {
	CreateOrder(ctx context.Context, req gateway.OrderRequest) (domain.Order, error)
}

// Cart holds staged line items in insertion order, keyed uniquely by product
// id.
type Cart struct {
	submitter Submitter

	mu    sync.Mutex
	items []domain.CartItem
}

// New builds an empty Cart.
func New(submitter Submitter) *Cart {
	return &Cart{submitter: submitter}
}

// Add stages a product with quantity 1. Products without an id are rejected.
// Adding a product already in the cart increments its quantity instead of
// inserting a duplicate line.
func (c *Cart) Add(p domain.Product) bool {
	if p.ID == 0 {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Quantity++
			return true
		}
	}
	c.items = append(c.items, domain.CartItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		Price:       p.Price,
		Quantity:    1,
	})
	return true
}

// UpdateQuantity sets the quantity for a staged product. A quantity of zero
// or less removes the line. Unknown product ids are no-ops. Stock limits are
// not checked here; that is the backend's job at submission time.
func (c *Cart) UpdateQuantity(productID int64, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the line for a product. Absent ids are no-ops.
func (c *Cart) Remove(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Contains reports whether a product is staged.
func (c *Cart) Contains(productID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

// Items returns a copy of the staged lines in insertion order.
func (c *Cart) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]domain.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Total recomputes the running total from the current contents on every
// call; there is no cached value to drift.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, it := range c.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// Len returns the number of staged lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear drops every staged line.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Submit places the staged order. An empty cart is rejected locally with
// domain.ErrEmptyCart and no request is made. On success the cart is
// cleared; on failure the contents are left untouched so the user can retry.
func (c *Cart) Submit(ctx context.Context) (domain.Order, error) {
	c.mu.Lock()
	if len(c.items) == 0 {
		c.mu.Unlock()
		return domain.Order{}, domain.ErrEmptyCart
	}
	req := gateway.OrderRequest{Items: make([]gateway.OrderItemRequest, 0, len(c.items))}
	for _, it := range c.items {
		req.Items = append(req.Items, gateway.OrderItemRequest{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	c.mu.Unlock()

	order, err := c.submitter.CreateOrder(ctx, req)
	if err != nil {
		return domain.Order{}, err
	}

	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
	return order, nil
}
