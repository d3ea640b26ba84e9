package store

import "techstore/pkg/domain"

// Pricing holds the display-time pricing rules.
type Pricing struct {
	TaxRate          float64
	ShippingFee      float64
	FreeShippingOver float64
}

// DefaultPricing returns the demo store rules: 8% tax, $9.99 flat
// shipping, free shipping on subtotals over $100.
func DefaultPricing() Pricing {
	return Pricing{
		TaxRate:          0.08,
		ShippingFee:      9.99,
		FreeShippingOver: 100,
	}
}

// Totals are recomputed on every read, never stored.
type Totals struct {
	Subtotal float64
	Shipping float64
	Tax      float64
	Total    float64
}

// ComputeTotals is the single source of cart arithmetic. Every surface
// that shows totals goes through it so cart and checkout cannot drift.
// A line whose product is missing contributes zero to the subtotal.
func ComputeTotals(lines []domain.CartLine, priceOf func(productID string) (float64, bool), rules Pricing) Totals {
	var t Totals
	for _, line := range lines {
		price, ok := priceOf(line.ProductID)
		if !ok {
			continue
		}
		t.Subtotal += price * float64(line.Quantity)
	}
	if t.Subtotal > rules.FreeShippingOver {
		t.Shipping = 0
	} else {
		t.Shipping = rules.ShippingFee
	}
	t.Tax = t.Subtotal * rules.TaxRate
	t.Total = t.Subtotal + t.Shipping + t.Tax
	return t
}
