package store

import (
	"encoding/json"
	"testing"

	"techstore/pkg/domain"
	"techstore/pkg/kv"
)

func newCatalogStore(t *testing.T) (*CatalogStore, kv.Store) {
	t.Helper()
	records := kv.NewMemory()
	return NewCatalogStore(DefaultSeed(), DefaultPricing(), records), records
}

func cartLine(t *testing.T, s *CatalogStore, productID string) (domain.CartLine, bool) {
	t.Helper()
	for _, line := range s.Cart() {
		if line.ProductID == productID {
			return line, true
		}
	}
	return domain.CartLine{}, false
}

func TestAddToCartMergesQuantities(t *testing.T) {
	s, _ := newCatalogStore(t)

	s.AddToCart("1", 2)
	s.AddToCart("1", 3)

	cart := s.Cart()
	if len(cart) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(cart))
	}
	if cart[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", cart[0].Quantity)
	}
}

func TestAddToCartDefaultsToOne(t *testing.T) {
	s, _ := newCatalogStore(t)

	s.AddToCart("3", 0)
	line, ok := cartLine(t, s, "3")
	if !ok || line.Quantity != 1 {
		t.Fatalf("expected quantity clamped to 1, got %+v ok=%v", line, ok)
	}
}

func TestUpdateZeroEqualsRemove(t *testing.T) {
	left, _ := newCatalogStore(t)
	right, _ := newCatalogStore(t)

	left.AddToCart("2", 4)
	right.AddToCart("2", 4)

	left.UpdateCartQuantity("2", 0)
	right.RemoveFromCart("2")

	if len(left.Cart()) != 0 || len(right.Cart()) != 0 {
		t.Fatalf("expected both carts empty, got %v and %v", left.Cart(), right.Cart())
	}
}

func TestUpdateSetsExactQuantity(t *testing.T) {
	s, _ := newCatalogStore(t)

	s.AddToCart("4", 2)
	s.UpdateCartQuantity("4", 7)
	line, _ := cartLine(t, s, "4")
	if line.Quantity != 7 {
		t.Fatalf("expected quantity set to 7, got %d", line.Quantity)
	}

	// Updating a product with no line is a no-op, not an insert.
	s.UpdateCartQuantity("missing", 3)
	if _, ok := cartLine(t, s, "missing"); ok {
		t.Fatalf("expected no line created for absent product")
	}
}

func TestRemoveFromCartAbsentIsNoop(t *testing.T) {
	s, _ := newCatalogStore(t)
	s.AddToCart("1", 1)
	s.RemoveFromCart("does-not-exist")
	if len(s.Cart()) != 1 {
		t.Fatalf("expected cart untouched, got %v", s.Cart())
	}
}

func TestPlaceOrderEmptyCartIsNoop(t *testing.T) {
	s, _ := newCatalogStore(t)
	before := len(s.Orders())

	if _, ok := s.PlaceOrder("2", domain.Address{Name: "John Smith"}); ok {
		t.Fatalf("expected placeOrder on empty cart to fail")
	}
	if len(s.Orders()) != before {
		t.Fatalf("expected order history unchanged")
	}
}

func TestPlaceOrderSnapshotsAndClearsCart(t *testing.T) {
	s, records := newCatalogStore(t)
	before := len(s.Orders())

	s.AddToCart("1", 1)
	s.AddToCart("4", 2)

	addr := domain.Address{
		Name: "John Smith", Street: "123 Tech Street",
		City: "San Francisco", ZipCode: "94102", Country: "USA",
	}
	order, ok := s.PlaceOrder("2", addr)
	if !ok {
		t.Fatalf("expected order to be placed")
	}
	if order.Status != domain.StatusPending {
		t.Fatalf("expected pending status, got %q", order.Status)
	}
	if order.ID == "" || order.CreatedAt.IsZero() {
		t.Fatalf("expected generated id and timestamp: %+v", order)
	}
	// 2499 + 2*299
	if order.Total != 3097 {
		t.Fatalf("unexpected total: %v", order.Total)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected snapshot of 2 lines, got %d", len(order.Items))
	}
	if order.ShippingAddress != addr {
		t.Fatalf("unexpected address snapshot: %+v", order.ShippingAddress)
	}
	if len(s.Orders()) != before+1 {
		t.Fatalf("expected order appended to history")
	}
	if len(s.Cart()) != 0 {
		t.Fatalf("expected cart cleared after order")
	}
	if _, ok, _ := records.Get("cart"); ok {
		t.Fatalf("expected persisted cart record removed")
	}

	// The snapshot must be immune to later cart mutation.
	s.AddToCart("1", 9)
	if order.Items[0].Quantity != 1 {
		t.Fatalf("order snapshot mutated: %+v", order.Items)
	}
}

func TestPlaceOrderMissingProductPricedZero(t *testing.T) {
	s, _ := newCatalogStore(t)

	s.AddToCart("ghost", 3)
	s.AddToCart("7", 1)
	order, ok := s.PlaceOrder("2", domain.Address{})
	if !ok {
		t.Fatalf("expected order to be placed")
	}
	if order.Total != 79 {
		t.Fatalf("expected missing product to contribute zero, got total %v", order.Total)
	}
}

func TestPlaceOrderDoesNotDecrementStock(t *testing.T) {
	s, _ := newCatalogStore(t)

	s.AddToCart("1", 2)
	if _, ok := s.PlaceOrder("2", domain.Address{}); !ok {
		t.Fatalf("expected order to be placed")
	}
	p, _ := s.Product("1")
	if p.Stock != 15 {
		t.Fatalf("stock must stay untouched on order placement, got %d", p.Stock)
	}
}

func TestCartPersistedAndRestored(t *testing.T) {
	records := kv.NewMemory()
	first := NewCatalogStore(DefaultSeed(), DefaultPricing(), records)
	first.AddToCart("2", 2)
	first.AddToCart("8", 1)

	raw, ok, _ := records.Get("cart")
	if !ok {
		t.Fatalf("expected persisted cart record")
	}
	var lines []domain.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		t.Fatalf("decode persisted cart: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("unexpected persisted lines: %+v", lines)
	}

	second := NewCatalogStore(DefaultSeed(), DefaultPricing(), records)
	if len(second.Cart()) != 2 {
		t.Fatalf("expected cart restored across restart, got %v", second.Cart())
	}
}

func TestMalformedCartRecordDiscarded(t *testing.T) {
	records := kv.NewMemory()
	if err := records.Set("cart", []byte("{{{not json")); err != nil {
		t.Fatalf("seed record: %v", err)
	}

	s := NewCatalogStore(DefaultSeed(), DefaultPricing(), records)
	if len(s.Cart()) != 0 {
		t.Fatalf("expected empty cart after malformed record")
	}
	if _, ok, _ := records.Get("cart"); ok {
		t.Fatalf("expected malformed record deleted")
	}
}

func TestAddCategoryAndProductGenerateIDs(t *testing.T) {
	s, _ := newCatalogStore(t)

	c := s.AddCategory(domain.Category{Name: "Wearables", Description: "Watches and bands"})
	if c.ID == "" {
		t.Fatalf("expected generated category id")
	}
	p := s.AddProduct(domain.Product{Name: "Smart Watch", Price: 199, CategoryID: c.ID, Stock: 10})
	if p.ID == "" {
		t.Fatalf("expected generated product id")
	}
	if p.ID == c.ID {
		t.Fatalf("expected distinct ids")
	}
	got, ok := s.Product(p.ID)
	if !ok || got.Name != "Smart Watch" {
		t.Fatalf("expected product retrievable, got %+v ok=%v", got, ok)
	}
	if len(s.ProductsByCategory(c.ID)) != 1 {
		t.Fatalf("expected product listed under its category")
	}

	// Dangling category references are allowed.
	dangling := s.AddProduct(domain.Product{Name: "Orphan", CategoryID: "no-such-category"})
	if _, ok := s.Product(dangling.ID); !ok {
		t.Fatalf("expected product with dangling category to be stored")
	}
}

func TestOrdersForUserFiltersHistory(t *testing.T) {
	s, _ := newCatalogStore(t)

	johns := s.OrdersForUser("2")
	if len(johns) != 1 || johns[0].ID != "1" {
		t.Fatalf("unexpected orders for user 2: %+v", johns)
	}
	if got := s.OrdersForUser("nobody"); len(got) != 0 {
		t.Fatalf("expected no orders for unknown user, got %+v", got)
	}
}

func TestCatalogSubscribersNotified(t *testing.T) {
	s, _ := newCatalogStore(t)

	calls := 0
	cancel := s.Subscribe(func() { calls++ })
	s.AddToCart("1", 1)
	s.UpdateCartQuantity("1", 2)
	s.ClearCart()
	if calls != 3 {
		t.Fatalf("expected 3 notifications, got %d", calls)
	}
	cancel()
	s.AddToCart("1", 1)
	if calls != 3 {
		t.Fatalf("expected no notification after cancel, got %d", calls)
	}
}
