package stubgateway

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"orderconsole/internal/domain"
	"orderconsole/internal/gateway"
)

// The stub is exercised through the real gateway client, so these tests also
// pin the wire contract between the two.
func testClient(t *testing.T) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(New(nil).Handler())
	t.Cleanup(srv.Close)
	return gateway.New(srv.URL+"/api", nil, nil)
}

func TestProductsPage_Pagination(t *testing.T) {
	client := testClient(t)

	page, err := client.ProductsPage(context.Background(), gateway.PageQuery{Page: 0, Size: 3, SortBy: "id", SortDir: "asc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalElements != 8 || page.TotalPages != 3 {
		t.Fatalf("unexpected totals %+v", page)
	}
	if len(page.Content) != 3 || page.Content[0].Name != "Laptop Dell XPS 15" {
		t.Fatalf("unexpected first page %+v", page.Content)
	}

	last, err := client.ProductsPage(context.Background(), gateway.PageQuery{Page: 2, Size: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(last.Content) != 2 {
		t.Fatalf("expected 2 remaining products, got %d", len(last.Content))
	}
}

func TestProducts_SortDescending(t *testing.T) {
	client := testClient(t)

	page, err := client.ProductsPage(context.Background(), gateway.PageQuery{Page: 0, Size: 8, SortBy: "price", SortDir: "desc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Content[0].Name != "Laptop Dell XPS 15" {
		t.Fatalf("expected priciest product first, got %+v", page.Content[0])
	}
}

func TestProductCRUD(t *testing.T) {
	client := testClient(t)

	created, err := client.CreateProduct(context.Background(), domain.Product{Name: "Dock Station", Price: 799, StockQuantity: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id, got %+v", created)
	}

	updated, err := client.UpdateProduct(context.Background(), created.ID, domain.Product{Name: "Dock Station v2", Price: 899, StockQuantity: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Dock Station v2" {
		t.Fatalf("unexpected update %+v", updated)
	}

	if err := client.DeleteProduct(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := client.DeleteProduct(context.Background(), created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := client.CreateProduct(context.Background(), domain.Product{Name: "", Price: 1}); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for nameless product, got %v", err)
	}
}

func TestCreateOrder_DecrementsStock(t *testing.T) {
	client := testClient(t)

	order, err := client.CreateOrder(context.Background(), gateway.OrderRequest{
		Items: []gateway.OrderItemRequest{{ProductID: 8, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Total != 2*899.00 {
		t.Fatalf("expected computed total, got %v", order.Total)
	}
	if order.Status != domain.TagPending {
		t.Fatalf("new orders start pending, got %s", order.Status)
	}

	// Seeded stock for product 8 is 12; two were just taken.
	products, err := client.Products(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range products {
		if p.ID == 8 && p.StockQuantity != 10 {
			t.Fatalf("expected stock 10, got %d", p.StockQuantity)
		}
	}
}

func TestCreateOrder_FailureClasses(t *testing.T) {
	client := testClient(t)

	cases := []struct {
		name string
		req  gateway.OrderRequest
		want error
	}{
		{"no items", gateway.OrderRequest{}, domain.ErrInvalid},
		{"bad quantity", gateway.OrderRequest{Items: []gateway.OrderItemRequest{{ProductID: 1, Quantity: 0}}}, domain.ErrInvalid},
		{"unknown product", gateway.OrderRequest{Items: []gateway.OrderItemRequest{{ProductID: 999, Quantity: 1}}}, domain.ErrNotFound},
		{"over stock", gateway.OrderRequest{Items: []gateway.OrderItemRequest{{ProductID: 4, Quantity: 9}}}, domain.ErrInvalid},
	}
	for _, c := range cases {
		if _, err := client.CreateOrder(context.Background(), c.req); !errors.Is(err, c.want) {
			t.Fatalf("%s: expected %v, got %v", c.name, c.want, err)
		}
	}
}

func TestOrderStatusLifecycle(t *testing.T) {
	client := testClient(t)

	updated, err := client.UpdateOrderStatus(context.Background(), 1, domain.StatusProcessing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.TagProcessing {
		t.Fatalf("expected processing, got %s", updated.Status)
	}

	if _, err := client.UpdateOrderStatus(context.Background(), 1, "SHIPPED"); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for non-canonical status, got %v", err)
	}
	if _, err := client.UpdateOrderStatus(context.Background(), 999, domain.StatusCompleted); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	completed, err := client.OrdersByStatus(context.Background(), domain.StatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(completed) != 1 || completed[0].ID != 2 {
		t.Fatalf("unexpected completed orders %+v", completed)
	}
}

func TestOrders_PagedAndSorted(t *testing.T) {
	client := testClient(t)

	page, err := client.Orders(context.Background(), gateway.PageQuery{Page: 0, Size: 2, SortBy: "id", SortDir: "desc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalElements != 3 || page.TotalPages != 2 {
		t.Fatalf("unexpected totals %+v", page)
	}
	if page.Content[0].ID != 3 {
		t.Fatalf("expected newest order first, got %+v", page.Content[0])
	}
}
