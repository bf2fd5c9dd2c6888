package stubgateway

import (
	"time"

	"orderconsole/internal/domain"
)

// seed loads the demo catalog and a couple of orders so the console has data
// to show out of the box.
func seed(s *store) {
	catalog := []product{
		{Name: "Laptop Dell XPS 15", Description: "High-performance laptop with Intel i7 processor and 16GB RAM", Price: 6999.99, StockQuantity: 15},
		{Name: "Wireless Mouse Logitech MX", Description: "Ergonomic wireless mouse with precision tracking", Price: 349.90, StockQuantity: 50},
		{Name: "Mechanical Keyboard RGB", Description: "Gaming mechanical keyboard with RGB backlight and blue switches", Price: 499.00, StockQuantity: 30},
		{Name: "Monitor LG UltraWide 29\"", Description: "29-inch ultrawide monitor with IPS panel and Full HD resolution", Price: 1899.00, StockQuantity: 8},
		{Name: "USB-C Hub 7-in-1", Description: "Multiport adapter with HDMI, USB 3.0, SD card reader and USB-C PD", Price: 189.90, StockQuantity: 100},
		{Name: "Webcam Full HD 1080p", Description: "HD webcam with auto focus and built-in microphone", Price: 299.00, StockQuantity: 25},
		{Name: "Headset Gamer HyperX", Description: "Professional gaming headset with 7.1 surround sound", Price: 549.90, StockQuantity: 20},
		{Name: "External SSD 1TB Samsung", Description: "Portable SSD with ultra-fast read/write speeds", Price: 899.00, StockQuantity: 12},
	}
	for _, p := range catalog {
		s.createProduct(p)
	}

	base := time.Date(2025, 10, 1, 10, 30, 0, 0, time.UTC)
	seedOrders := []orderRequest{
		{Items: []orderItemRequest{{ProductID: 1, Quantity: 1}, {ProductID: 2, Quantity: 2}}},
		{Items: []orderItemRequest{{ProductID: 3, Quantity: 2}}},
		{Items: []orderItemRequest{{ProductID: 4, Quantity: 1}, {ProductID: 5, Quantity: 2}, {ProductID: 6, Quantity: 2}}},
	}
	for i, req := range seedOrders {
		at := base.Add(time.Duration(i) * 26 * time.Hour)
		s.now = func() time.Time { return at }
		if _, err := s.createOrder(req); err != nil {
			panic("stubgateway seed: " + err.Error())
		}
	}
	s.now = time.Now

	// One completed order so the dashboard revenue counter has something to
	// sum.
	if _, err := s.updateOrderStatus(2, domain.StatusCompleted); err != nil {
		panic("stubgateway seed: " + err.Error())
	}
}
