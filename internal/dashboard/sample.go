package dashboard

import (
	"time"

	"orderconsole/internal/domain"
)

// sampleOrders is the fixed dataset the dashboard serves when the backend is
// unreachable, so the console stays demonstrable without a gateway.
func sampleOrders() []domain.Order {
	return []domain.Order{
		{
			ID:        1,
			CreatedAt: time.Date(2025, 10, 1, 10, 30, 0, 0, time.UTC),
			Total:     7849.89,
			Status:    domain.TagPending,
			Items: []domain.OrderItem{
				{ProductName: "Laptop Dell XPS 15", Quantity: 1, Price: 6999.99},
				{ProductName: "Wireless Mouse Logitech MX", Quantity: 2, Price: 349.90},
			},
		},
		{
			ID:        2,
			CreatedAt: time.Date(2025, 10, 2, 14, 20, 0, 0, time.UTC),
			Total:     998.90,
			Status:    domain.TagCompleted,
			Items: []domain.OrderItem{
				{ProductName: "Mechanical Keyboard RGB", Quantity: 2, Price: 499.00},
			},
		},
		{
			ID:        3,
			CreatedAt: time.Date(2025, 10, 2, 16, 45, 0, 0, time.UTC),
			Total:     2687.90,
			Status:    domain.TagProcessing,
			Items: []domain.OrderItem{
				{ProductName: "Monitor LG UltraWide 29\"", Quantity: 1, Price: 1899.00},
				{ProductName: "USB-C Hub 7-in-1", Quantity: 2, Price: 189.90},
				{ProductName: "Webcam Full HD 1080p", Quantity: 2, Price: 299.00},
			},
		},
		{
			ID:        4,
			CreatedAt: time.Date(2025, 10, 3, 9, 15, 0, 0, time.UTC),
			Total:     1449.80,
			Status:    domain.TagCompleted,
			Items: []domain.OrderItem{
				{ProductName: "Headset Gamer HyperX", Quantity: 1, Price: 549.90},
				{ProductName: "External SSD 1TB Samsung", Quantity: 1, Price: 899.00},
			},
		},
		{
			ID:        5,
			CreatedAt: time.Date(2025, 10, 3, 11, 0, 0, 0, time.UTC),
			Total:     349.90,
			Status:    domain.TagCanceled,
			Items: []domain.OrderItem{
				{ProductName: "Wireless Mouse Logitech MX", Quantity: 1, Price: 349.90},
			},
		},
	}
}
