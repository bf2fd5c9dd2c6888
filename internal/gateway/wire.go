package gateway

import (
	"time"

	"orderconsole/internal/domain"
)

// OrderRequest is the order-creation payload.
type OrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// OrderResponse mirrors the backend's order DTO.
type OrderResponse struct {
	ID        int64               `json:"id"`
	CreatedAt time.Time           `json:"createdAt"`
	Status    string              `json:"status"`
	Total     float64             `json:"total"`
	Items     []OrderItemResponse `json:"items"`
}

type OrderItemResponse struct {
	ID          int64   `json:"id"`
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// pageResponse mirrors the backend's page envelope.
type pageResponse[T any] struct {
	Content       []T   `json:"content"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
}

func (w OrderResponse) toOrder() domain.Order {
	items := make([]domain.OrderItem, 0, len(w.Items))
	for _, it := range w.Items {
		items = append(items, domain.OrderItem{
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return domain.Order{
		ID:        w.ID,
		CreatedAt: w.CreatedAt,
		Total:     w.Total,
		Status:    domain.StatusTag(w.Status),
		Items:     items,
	}
}

func toOrderPage(wire pageResponse[OrderResponse], q PageQuery) domain.Page[domain.Order] {
	orders := make([]domain.Order, 0, len(wire.Content))
	for _, w := range wire.Content {
		orders = append(orders, w.toOrder())
	}
	return domain.Page[domain.Order]{
		Content:       orders,
		Page:          wire.Number,
		Size:          pageSize(wire.Size, q.Size),
		TotalPages:    wire.TotalPages,
		TotalElements: wire.TotalElements,
	}
}
