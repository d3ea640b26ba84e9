package store

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"techstore/internal/util"
	"techstore/pkg/domain"
	"techstore/pkg/kv"
)

// cartRecordKey is the persisted-record key for the active cart.
const cartRecordKey = "cart"

// CatalogStore owns categories, products, the active cart, and order
// history for the lifetime of the process. The cart is persisted after
// every cart mutation; everything else is in-memory only.
type CatalogStore struct {
	subscriptions

	mu         sync.RWMutex
	categories []domain.Category
	products   []domain.Product
	cart       []domain.CartLine
	orders     []domain.Order

	records kv.Store
	pricing Pricing
}

// NewCatalogStore seeds the catalog and restores any persisted cart.
// A malformed cart record is discarded and the cart starts empty.
func NewCatalogStore(seed Seed, pricing Pricing, records kv.Store) *CatalogStore {
	s := &CatalogStore{
		categories: append([]domain.Category(nil), seed.Categories...),
		products:   append([]domain.Product(nil), seed.Products...),
		orders:     append([]domain.Order(nil), seed.Orders...),
		records:    records,
		pricing:    pricing,
	}
	s.restoreCart()
	return s
}

func (s *CatalogStore) restoreCart() {
	raw, ok, err := s.records.Get(cartRecordKey)
	if err != nil {
		slog.Warn("read persisted cart", "err", err)
		return
	}
	if !ok {
		return
	}
	var lines []domain.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		slog.Warn("discarding malformed cart record", "err", err)
		if err := s.records.Delete(cartRecordKey); err != nil {
			slog.Warn("remove malformed cart record", "err", err)
		}
		return
	}
	for _, line := range lines {
		if line.ProductID != "" && line.Quantity > 0 {
			s.cart = append(s.cart, line)
		}
	}
}

// Categories returns all categories in insertion order.
func (s *CatalogStore) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Category(nil), s.categories...)
}

// Products returns all products in insertion order.
func (s *CatalogStore) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Product(nil), s.products...)
}

// ProductsByCategory returns products referencing the given category.
func (s *CatalogStore) ProductsByCategory(categoryID string) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var res []domain.Product
	for _, p := range s.products {
		if p.CategoryID == categoryID {
			res = append(res, p)
		}
	}
	return res
}

// Product looks up a product by ID.
func (s *CatalogStore) Product(id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.productLocked(id)
}

func (s *CatalogStore) productLocked(id string) (domain.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Cart returns a copy of the active cart lines.
func (s *CatalogStore) Cart() []domain.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.CartLine(nil), s.cart...)
}

// Orders returns the full order history, oldest first.
func (s *CatalogStore) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Order(nil), s.orders...)
}

// OrdersForUser returns the order history owned by one user.
func (s *CatalogStore) OrdersForUser(userID string) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var res []domain.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			res = append(res, o)
		}
	}
	return res
}

// AddCategory appends a category under a generated ID. No uniqueness
// checks are applied.
func (s *CatalogStore) AddCategory(c domain.Category) domain.Category {
	c.ID = util.NewID()
	s.mu.Lock()
	s.categories = append(s.categories, c)
	s.mu.Unlock()
	s.notify()
	return c
}

// AddProduct appends a product under a generated ID. The category
// reference is not validated; a dangling reference is allowed.
func (s *CatalogStore) AddProduct(p domain.Product) domain.Product {
	p.ID = util.NewID()
	s.mu.Lock()
	s.products = append(s.products, p)
	s.mu.Unlock()
	s.notify()
	return p
}

// AddToCart merges quantity into an existing line for the product, or
// inserts a new line. Quantities below 1 are treated as 1. Stock limits
// are a presentation-layer concern, not enforced here.
func (s *CatalogStore) AddToCart(productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	merged := false
	for i := range s.cart {
		if s.cart[i].ProductID == productID {
			s.cart[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.cart = append(s.cart, domain.CartLine{ProductID: productID, Quantity: quantity})
	}
	snapshot := append([]domain.CartLine(nil), s.cart...)
	s.mu.Unlock()

	s.persistCart(snapshot)
	s.notify()
}

// RemoveFromCart deletes the product's line; no-op when absent.
func (s *CatalogStore) RemoveFromCart(productID string) {
	s.mu.Lock()
	filtered := s.cart[:0]
	for _, line := range s.cart {
		if line.ProductID != productID {
			filtered = append(filtered, line)
		}
	}
	s.cart = filtered
	snapshot := append([]domain.CartLine(nil), s.cart...)
	s.mu.Unlock()

	s.persistCart(snapshot)
	s.notify()
}

// UpdateCartQuantity sets a line's quantity exactly. A quantity of zero
// or less removes the line. Updating an absent product is a no-op.
func (s *CatalogStore) UpdateCartQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(productID)
		return
	}
	s.mu.Lock()
	for i := range s.cart {
		if s.cart[i].ProductID == productID {
			s.cart[i].Quantity = quantity
			break
		}
	}
	snapshot := append([]domain.CartLine(nil), s.cart...)
	s.mu.Unlock()

	s.persistCart(snapshot)
	s.notify()
}

// ClearCart empties the cart.
func (s *CatalogStore) ClearCart() {
	s.mu.Lock()
	s.cart = nil
	s.mu.Unlock()

	s.persistCart(nil)
	s.notify()
}

// PlaceOrder snapshots the cart into a new pending order and clears the
// cart. Returns ok=false on an empty cart, leaving everything unchanged.
// The order total is the plain subtotal; lines whose product is missing
// are priced at zero. Stock is not decremented.
func (s *CatalogStore) PlaceOrder(userID string, shippingAddress domain.Address) (domain.Order, bool) {
	s.mu.Lock()
	if len(s.cart) == 0 {
		s.mu.Unlock()
		return domain.Order{}, false
	}
	var total float64
	for _, line := range s.cart {
		if p, ok := s.productLocked(line.ProductID); ok {
			total += p.Price * float64(line.Quantity)
		}
	}
	order := domain.Order{
		ID:              util.NewID(),
		UserID:          userID,
		Items:           append([]domain.CartLine(nil), s.cart...),
		Total:           total,
		Status:          domain.StatusPending,
		CreatedAt:       time.Now().UTC(),
		ShippingAddress: shippingAddress,
	}
	s.orders = append(s.orders, order)
	s.cart = nil
	s.mu.Unlock()

	s.persistCart(nil)
	s.notify()
	return order, true
}

// CartTotals computes display totals for the active cart.
func (s *CatalogStore) CartTotals() Totals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ComputeTotals(s.cart, func(productID string) (float64, bool) {
		p, ok := s.productLocked(productID)
		return p.Price, ok
	}, s.pricing)
}

// Persistence is best-effort: a failed write is logged, never surfaced.
// An empty cart removes the record rather than writing an empty array.
func (s *CatalogStore) persistCart(lines []domain.CartLine) {
	if len(lines) == 0 {
		if err := s.records.Delete(cartRecordKey); err != nil {
			slog.Warn("remove persisted cart", "err", err)
		}
		return
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		slog.Warn("encode cart record", "err", err)
		return
	}
	if err := s.records.Set(cartRecordKey, raw); err != nil {
		slog.Warn("persist cart record", "err", err)
	}
}
