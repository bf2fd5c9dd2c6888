package cart

import (
	"context"
	"errors"
	"testing"

	"orderconsole/internal/domain"
	"orderconsole/internal/gateway"
)

type stubSubmitter struct {
	order   domain.Order
	err     error
	calls   int
	lastReq gateway.OrderRequest
}

func (s *stubSubmitter) CreateOrder(_ context.Context, req gateway.OrderRequest) (domain.Order, error) {
	s.calls++
	s.lastReq = req
	return s.order, s.err
}

func laptop() domain.Product {
	return domain.Product{ID: 1, Name: "Laptop", Price: 100}
}

func mouse() domain.Product {
	return domain.Product{ID: 2, Name: "Mouse", Price: 50}
}

func TestAdd_RejectsMissingIDAndMergesDuplicates(t *testing.T) {
	c := New(nil)

	if c.Add(domain.Product{Name: "no id"}) {
		t.Fatalf("product without id must be rejected")
	}
	if c.Len() != 0 {
		t.Fatalf("rejected add must not stage anything")
	}

	if !c.Add(laptop()) {
		t.Fatalf("expected add to succeed")
	}
	c.Add(laptop())
	items := c.Items()
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("duplicate add should merge quantities, got %+v", items)
	}
}

func TestTotal_TracksMutations(t *testing.T) {
	c := New(nil)
	c.Add(laptop())
	c.UpdateQuantity(1, 2)
	c.Add(mouse())

	if got := c.Total(); got != 250 {
		t.Fatalf("expected total 250, got %v", got)
	}
	// Idempotent with no intervening mutation.
	if got := c.Total(); got != 250 {
		t.Fatalf("repeated total drifted to %v", got)
	}

	c.Remove(1)
	if got := c.Total(); got != 50 {
		t.Fatalf("expected total 50 after removal, got %v", got)
	}
}

func TestUpdateQuantity_NonPositiveRemoves(t *testing.T) {
	c := New(nil)
	c.Add(laptop())
	c.UpdateQuantity(1, 0)
	if c.Contains(1) {
		t.Fatalf("quantity 0 should remove the item")
	}

	c.Add(laptop())
	c.UpdateQuantity(1, -1)
	if c.Contains(1) {
		t.Fatalf("negative quantity should remove the item")
	}

	// No-ops on absent ids.
	c.UpdateQuantity(99, 5)
	c.Remove(99)
	if c.Len() != 0 {
		t.Fatalf("absent-id operations must not stage items")
	}
}

func TestSubmit_EmptyCartRejectedLocally(t *testing.T) {
	submitter := &stubSubmitter{}
	c := New(submitter)

	_, err := c.Submit(context.Background())
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if submitter.calls != 0 {
		t.Fatalf("empty cart must not issue a network call")
	}
}

func TestSubmit_SuccessClearsCart(t *testing.T) {
	submitter := &stubSubmitter{order: domain.Order{ID: 42}}
	c := New(submitter)
	c.Add(laptop())
	c.UpdateQuantity(1, 2)
	c.Add(mouse())

	order, err := c.Submit(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != 42 {
		t.Fatalf("expected created order 42, got %+v", order)
	}
	if c.Len() != 0 {
		t.Fatalf("successful submit must clear the cart")
	}
	want := []gateway.OrderItemRequest{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 1}}
	if len(submitter.lastReq.Items) != 2 || submitter.lastReq.Items[0] != want[0] || submitter.lastReq.Items[1] != want[1] {
		t.Fatalf("unexpected request %+v", submitter.lastReq)
	}
}

func TestSubmit_FailureKeepsContents(t *testing.T) {
	submitter := &stubSubmitter{err: domain.ErrNotFound}
	c := New(submitter)
	c.Add(laptop())

	if _, err := c.Submit(context.Background()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("failed submit must leave the cart untouched")
	}
}
