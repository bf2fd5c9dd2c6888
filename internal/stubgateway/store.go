package stubgateway

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"orderconsole/internal/domain"
)

// product and order are the stub's wire shapes, matching the real backend's
// DTOs.
type product struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
}

type order struct {
	ID        int64       `json:"id"`
	CreatedAt time.Time   `json:"createdAt"`
	Status    string      `json:"status"`
	Total     float64     `json:"total"`
	Items     []orderItem `json:"items"`
}

type orderItem struct {
	ID          int64   `json:"id"`
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type orderItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type orderRequest struct {
	Items []orderItemRequest `json:"items"`
}

type pageEnvelope[T any] struct {
	Content       []T   `json:"content"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
}

// store holds the stub's state. All access goes through the mutex; order
// creation validates and decrements stock atomically the way the real
// backend's transaction does.
type store struct {
	mu         sync.Mutex
	products   map[int64]product
	orders     []order
	nextProd   int64
	nextOrder  int64
	nextItemID int64
	now        func() time.Time
}

func newStore() *store {
	return &store{
		products:  make(map[int64]product),
		nextProd:  1,
		nextOrder: 1,
		now:       time.Now,
	}
}

func (s *store) listProducts() []product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *store) createProduct(p product) product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextProd
	s.nextProd++
	s.products[p.ID] = p
	return p
}

func (s *store) updateProduct(id int64, p product) (product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return product{}, domain.ErrNotFound
	}
	p.ID = id
	s.products[id] = p
	return p, nil
}

func (s *store) deleteProduct(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

func (s *store) listOrders() []order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *store) getOrder(id int64) (order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return order{}, domain.ErrNotFound
}

// createOrder validates every line, then decrements stock and records the
// order with status PENDING and a computed total.
func (s *store) createOrder(req orderRequest) (order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(req.Items) == 0 {
		return order{}, fmt.Errorf("%w: items required", domain.ErrInvalid)
	}
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return order{}, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalid)
		}
		p, ok := s.products[it.ProductID]
		if !ok {
			return order{}, fmt.Errorf("%w: product %d", domain.ErrNotFound, it.ProductID)
		}
		if p.StockQuantity < it.Quantity {
			return order{}, fmt.Errorf("%w: insufficient stock for product %d", domain.ErrInvalid, it.ProductID)
		}
	}

	o := order{
		ID:        s.nextOrder,
		CreatedAt: s.now(),
		Status:    domain.StatusPending,
	}
	s.nextOrder++
	for _, it := range req.Items {
		p := s.products[it.ProductID]
		p.StockQuantity -= it.Quantity
		s.products[it.ProductID] = p

		o.Items = append(o.Items, orderItem{
			ID:          s.nextItemID,
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    it.Quantity,
			Price:       p.Price,
		})
		s.nextItemID++
		o.Total += p.Price * float64(it.Quantity)
	}
	s.orders = append(s.orders, o)
	return o, nil
}

func (s *store) updateOrderStatus(id int64, status string) (order, error) {
	if !domain.KnownStatus(status) {
		return order{}, fmt.Errorf("%w: status %q", domain.ErrInvalid, status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return s.orders[i], nil
		}
	}
	return order{}, domain.ErrNotFound
}

func (s *store) ordersByStatus(status string) []order {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []order
	for _, o := range s.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// paginate slices items into a Spring-style page envelope with
// totalPages = ceil(totalElements/size).
func paginate[T any](items []T, page, size int) pageEnvelope[T] {
	total := len(items)
	totalPages := (total + size - 1) / size

	start := page * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return pageEnvelope[T]{
		Content:       items[start:end],
		Number:        page,
		Size:          size,
		TotalPages:    totalPages,
		TotalElements: int64(total),
	}
}
