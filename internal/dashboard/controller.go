// Package dashboard owns the order list state for one console session:
// the loaded page, client-side filters, derived statistics and paging.
package dashboard

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"orderconsole/internal/domain"
	"orderconsole/internal/gateway"
)

// Loader is the slice of the gateway client the controller needs.
type Loader interface {
	Orders(ctx context.Context, q gateway.PageQuery) (domain.Page[domain.Order], error)
	Order(ctx context.Context, id int64) (domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) (domain.Order, error)
}

const (
	defaultPageSize = 10
	defaultSortBy   = "id"
	defaultSortDir  = "desc"
)

// Controller drives the dashboard order list. All state transitions replace
// the snapshot atomically under the mutex; the gateway call itself runs
// unlocked so a slow backend never blocks readers.
type Controller struct {
	loader Loader
	logger *log.Logger

	mu            sync.Mutex
	orders        []domain.Order
	filtered      []domain.Order
	filter        domain.Filter
	stats         domain.Stats
	page          int
	size          int
	sortBy        string
	sortDir       string
	totalPages    int
	totalElements int64
	loading       bool
	degraded      bool

	// Monotonic load sequencing: a response is discarded when a newer load
	// has already been applied, so out-of-order completions cannot clobber
	// fresher state.
	nextSeq    uint64
	appliedSeq uint64
}

// Snapshot is an immutable copy of the controller state for rendering.
type Snapshot struct {
	Orders        []domain.Order `json:"orders"`
	Filter        domain.Filter  `json:"filter"`
	Stats         domain.Stats   `json:"stats"`
	Page          int            `json:"page"`
	Size          int            `json:"size"`
	SortBy        string         `json:"sortBy"`
	SortDir       string         `json:"sortDirection"`
	TotalPages    int            `json:"totalPages"`
	TotalElements int64          `json:"totalElements"`
	Loading       bool           `json:"loading"`
	Degraded      bool           `json:"degraded"`
}

// New builds a Controller with the default paging parameters.
func New(loader Loader, logger *log.Logger) *Controller {
	return &Controller{
		loader:  loader,
		logger:  logger,
		size:    defaultPageSize,
		sortBy:  defaultSortBy,
		sortDir: defaultSortDir,
		filter:  domain.Filter{Status: domain.StatusAll},
	}
}

// Load fetches the current page from the gateway and replaces the snapshot.
// A silent load never touches the loading flag (auto-refresh uses it). On
// failure the controller degrades to the built-in sample dataset instead of
// surfacing the error; the degradation is logged and flagged in the snapshot.
func (c *Controller) Load(ctx context.Context, silent bool) error {
	c.mu.Lock()
	c.nextSeq++
	seq := c.nextSeq
	if !silent {
		c.loading = true
	}
	q := gateway.PageQuery{Page: c.page, Size: c.size, SortBy: c.sortBy, SortDir: c.sortDir}
	c.mu.Unlock()

	page, err := c.loader.Orders(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq < c.appliedSeq {
		// A newer load already applied; this response is stale. Still clear
		// the spinner this load raised.
		if !silent {
			c.loading = false
		}
		return nil
	}
	c.appliedSeq = seq

	if err != nil {
		if c.logger != nil {
			c.logger.Printf("order list load failed, serving sample data: %v", err)
		}
		sample := sampleOrders()
		c.replaceLocked(domain.Page[domain.Order]{
			Content:       sample,
			Page:          0,
			Size:          c.size,
			TotalPages:    1,
			TotalElements: int64(len(sample)),
		}, true)
	} else {
		c.replaceLocked(page, false)
	}

	if !silent {
		c.loading = false
	}
	return nil
}

// replaceLocked installs a page as the new snapshot and recomputes the
// derived views. Callers hold c.mu.
func (c *Controller) replaceLocked(page domain.Page[domain.Order], degraded bool) {
	c.orders = page.Content
	c.page = page.Page
	c.totalPages = page.TotalPages
	c.totalElements = page.TotalElements
	c.degraded = degraded
	c.stats = computeStats(c.orders)
	c.filtered = applyFilters(c.orders, c.filter)
}

// SetFilter replaces the filter set and re-derives the filtered view from the
// in-memory page buffer. No backend call is made.
func (c *Controller) SetFilter(f domain.Filter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if f.Status == "" {
		f.Status = domain.StatusAll
	}
	c.filter = f
	c.filtered = applyFilters(c.orders, c.filter)
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

// ChangeSort switches the backend sort order and reloads.
func (c *Controller) ChangeSort(ctx context.Context, sortBy, sortDir string) error {
	c.mu.Lock()
	if sortBy != "" {
		c.sortBy = sortBy
	}
	if sortDir == "asc" || sortDir == "desc" {
		c.sortDir = sortDir
	}
	c.mu.Unlock()
	return c.Load(ctx, false)
}

// Order fetches a single order for the detail view.
func (c *Controller) Order(ctx context.Context, id int64) (domain.Order, error) {
	return c.loader.Order(ctx, id)
}

// UpdateStatus moves an order to the status behind the given display tag and
// reloads the page so the list reflects the transition.
func (c *Controller) UpdateStatus(ctx context.Context, id int64, tag string) error {
	wire, ok := domain.TagStatus(tag)
	if !ok {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalid, tag)
	}
	if _, err := c.loader.UpdateOrderStatus(ctx, id, wire); err != nil {
		return err
	}
	return c.Load(ctx, false)
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	orders := make([]domain.Order, len(c.filtered))
	copy(orders, c.filtered)
	return Snapshot{
		Orders:        orders,
		Filter:        c.filter,
		Stats:         c.stats,
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

// applyFilters narrows orders to those satisfying every active predicate.
// Date bounds are interpreted in UTC: the start bound at start of day, the
// end bound at 23:59:59. Unparsable dates leave their predicate inactive.
func applyFilters(orders []domain.Order, f domain.Filter) []domain.Order {
	var start, end time.Time
	if t, err := time.Parse("2006-01-02", f.StartDate); err == nil {
		start = t
	}
	if t, err := time.Parse("2006-01-02", f.EndDate); err == nil {
		end = t.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	}

	filtered := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if f.ID != 0 && o.ID != f.ID {
			continue
		}
		if !start.IsZero() && o.CreatedAt.Before(start) {
			continue
		}
		if !end.IsZero() && o.CreatedAt.After(end) {
			continue
		}
		if f.Status != "" && f.Status != domain.StatusAll && o.Status != f.Status {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}

// computeStats derives the dashboard counters over the loaded page only.
func computeStats(orders []domain.Order) domain.Stats {
	stats := domain.Stats{TotalOrders: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case domain.TagPending:
			stats.PendingOrders++
		case domain.TagCompleted:
			stats.TotalRevenue += o.Total
		}
	}
	return stats
}
