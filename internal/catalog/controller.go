// Package catalog owns the product list state for one console session:
// the loaded page, the client-side search term, and catalog CRUD.
package catalog

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"orderconsole/internal/domain"
	"orderconsole/internal/gateway"
)

// Store is the slice of the gateway client the controller needs.
type Store interface {
	ProductsPage(ctx context.Context, q gateway.PageQuery) (domain.Page[domain.Product], error)
	CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, p domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

const (
	defaultPageSize = 20
	defaultSortBy   = "id"
	defaultSortDir  = "asc"
)

// Controller drives the product list. Reloads replace the snapshot
// atomically; a failed load degrades to an empty catalog rather than
// surfacing the error.
type Controller struct {
	store  Store
	logger *log.Logger

	mu            sync.Mutex
	products      []domain.Product
	filtered      []domain.Product
	search        string
	page          int
	size          int
	sortBy        string
	sortDir       string
	totalPages    int
	totalElements int64
	loading       bool
	degraded      bool

	nextSeq    uint64
	appliedSeq uint64
}

// Input is the product form payload for create and update.
type Input struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
}

// Snapshot is an immutable copy of the controller state for rendering.
type Snapshot struct {
	Products      []domain.Product `json:"products"`
	Search        string           `json:"search,omitempty"`
	Page          int              `json:"page"`
	Size          int              `json:"size"`
	SortBy        string           `json:"sortBy"`
	SortDir       string           `json:"sortDirection"`
	TotalPages    int              `json:"totalPages"`
	TotalElements int64            `json:"totalElements"`
	Loading       bool             `json:"loading"`
	Degraded      bool             `json:"degraded"`
}

// New builds a Controller with the default paging parameters.
func New(store Store, logger *log.Logger) *Controller {
	return &Controller{
		store:   store,
		logger:  logger,
		size:    defaultPageSize,
		sortBy:  defaultSortBy,
		sortDir: defaultSortDir,
	}
}

// Load fetches the current catalog page. On failure the product list degrades
// to an empty set (logged), unlike the dashboard's sample fallback.
func (c *Controller) Load(ctx context.Context, silent bool) error {
	c.mu.Lock()
	c.nextSeq++
	seq := c.nextSeq
	if !silent {
		c.loading = true
	}
	q := gateway.PageQuery{Page: c.page, Size: c.size, SortBy: c.sortBy, SortDir: c.sortDir}
	c.mu.Unlock()

	page, err := c.store.ProductsPage(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq < c.appliedSeq {
		if !silent {
			c.loading = false
		}
		return nil
	}
	c.appliedSeq = seq

	if err != nil {
		if c.logger != nil {
			c.logger.Printf("product list load failed, serving empty catalog: %v", err)
		}
		page = domain.Page[domain.Product]{Size: c.size}
		c.degraded = true
	} else {
		c.degraded = false
	}

	c.products = page.Content
	c.page = page.Page
	c.totalPages = page.TotalPages
	c.totalElements = page.TotalElements
	c.filtered = filterProducts(c.products, c.search)

	if !silent {
		c.loading = false
	}
	return nil
}

// Search narrows the loaded page by a case-insensitive substring match on
// name or description. An empty term restores the full page.
func (c *Controller) Search(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = strings.TrimSpace(term)
	c.filtered = filterProducts(c.products, c.search)
}

// ChangePage moves to page n and reloads. Out-of-range targets are no-ops.
func (c *Controller) ChangePage(ctx context.Context, n int) error {
	c.mu.Lock()
	if n < 0 || n >= c.totalPages {
		c.mu.Unlock()
		return nil
	}
	c.page = n
	c.mu.Unlock()
	return c.Load(ctx, false)
}

// ChangePageSize resets to the first page with the new size and reloads.
func (c *Controller) ChangePageSize(ctx context.Context, size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: page size must be positive", domain.ErrInvalid)
	}
	c.mu.Lock()
	c.size = size
	c.page = 0
	c.mu.Unlock()
	return c.Load(ctx, false)
}

// Save creates a product, or updates it when id is non-zero, then reloads so
// the list reflects the change.
func (c *Controller) Save(ctx context.Context, id int64, in Input) (domain.Product, error) {
	if err := validate(in); err != nil {
		return domain.Product{}, err
	}
	product := domain.Product{
		Name:          strings.TrimSpace(in.Name),
		Description:   strings.TrimSpace(in.Description),
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
	}

	var (
		saved domain.Product
		err   error
	)
	if id != 0 {
		saved, err = c.store.UpdateProduct(ctx, id, product)
	} else {
		saved, err = c.store.CreateProduct(ctx, product)
	}
	if err != nil {
		return domain.Product{}, err
	}
	return saved, c.Load(ctx, false)
}

// Delete removes a product and reloads.
func (c *Controller) Delete(ctx context.Context, id int64) error {
	if err := c.store.DeleteProduct(ctx, id); err != nil {
		return err
	}
	return c.Load(ctx, false)
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	products := make([]domain.Product, len(c.filtered))
	copy(products, c.filtered)
	return Snapshot{
		Products:      products,
		Search:        c.search,
		Page:          c.page,
		Size:          c.size,
		SortBy:        c.sortBy,
		SortDir:       c.sortDir,
		TotalPages:    c.totalPages,
		TotalElements: c.totalElements,
		Loading:       c.loading,
		Degraded:      c.degraded,
	}
}

func validate(in Input) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name required", domain.ErrInvalid)
	}
	if in.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrInvalid)
	}
	if in.StockQuantity < 0 {
		return fmt.Errorf("%w: stock quantity must not be negative", domain.ErrInvalid)
	}
	return nil
}

func filterProducts(products []domain.Product, term string) []domain.Product {
	if term == "" {
		filtered := make([]domain.Product, len(products))
		copy(filtered, products)
		return filtered
	}
	needle := strings.ToLower(term)
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
