package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"orderconsole/internal/domain"
)

func TestOrders_MapsPageAndStatuses(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"content": [
				{"id": 1, "createdAt": "2025-10-01T10:30:00Z", "status": "PENDING", "total": 7849.89,
				 "items": [{"id": 10, "productId": 1, "productName": "Laptop", "quantity": 1, "price": 6999.99}]},
				{"id": 2, "createdAt": "2025-10-02T14:20:00Z", "status": "SHIPPED", "total": 998.90, "items": []}
			],
			"number": 2, "size": 10, "totalPages": 3, "totalElements": 23
		}`))
	}))
	defer srv.Close()

	client := New(srv.URL, nil, nil)
	page, err := client.Orders(context.Background(), PageQuery{Page: 2, Size: 10, SortBy: "id", SortDir: "desc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalPages != 3 || page.TotalElements != 23 || page.Page != 2 {
		t.Fatalf("unexpected page shape %+v", page)
	}
	if len(page.Content) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(page.Content))
	}
	if page.Content[0].Status != domain.TagPending {
		t.Fatalf("expected pending, got %s", page.Content[0].Status)
	}
	// Unknown wire statuses fall back to the pending tag.
	if page.Content[1].Status != domain.TagPending {
		t.Fatalf("expected pending for SHIPPED, got %s", page.Content[1].Status)
	}
	if page.Content[0].Items[0].ProductName != "Laptop" {
		t.Fatalf("unexpected item mapping %+v", page.Content[0].Items)
	}
	params, err := url.ParseQuery(gotQuery)
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}
	for key, want := range map[string]string{"page": "2", "size": "10", "sortBy": "id", "sortDirection": "desc"} {
		if got := params.Get(key); got != want {
			t.Fatalf("query param %s = %q, want %q", key, got, want)
		}
	}
}

func TestDo_StatusErrorTaxonomy(t *testing.T) {
	cases := []struct {
		code int
		want error
	}{
		{http.StatusBadRequest, domain.ErrInvalid},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusInternalServerError, domain.ErrUnavailable},
	}
	for _, c := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(c.code)
		}))
		client := New(srv.URL, nil, nil)
		_, err := client.Order(context.Background(), 1)
		srv.Close()
		if !errors.Is(err, c.want) {
			t.Fatalf("status %d: expected %v, got %v", c.code, c.want, err)
		}
	}
}

func TestDo_TransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	client := New(srv.URL, nil, nil)
	_, err := client.Products(context.Background())
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestCreateOrder_PostsItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/orders" {
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 42, "createdAt": "2025-10-03T09:15:00Z", "status": "PENDING", "total": 250, "items": []}`))
	}))
	defer srv.Close()

	client := New(srv.URL, nil, nil)
	order, err := client.CreateOrder(context.Background(), OrderRequest{
		Items: []OrderItemRequest{{ProductID: 1, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != 42 || order.Total != 250 {
		t.Fatalf("unexpected order %+v", order)
	}
}
