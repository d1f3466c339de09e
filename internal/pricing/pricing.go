// Package pricing derives cart totals from line items. All functions are pure;
// they read the price snapshot stored on each item and never consult the
// catalog.
package pricing

import "github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/domain"

type Config struct {
	FreeShippingThreshold int64
	FlatShippingFee       int64
	CurrencyCode          string
}

// Totals is the derived view computed on every read; nothing here is stored.
type Totals struct {
	Subtotal   int64  `json:"subtotal"`
	Shipping   int64  `json:"shipping"`
	Discount   int64  `json:"discount"`
	Total      int64  `json:"total"`
	TotalItems int    `json:"total_items"`
	Currency   string `json:"currency"`
}

func Subtotal(items []domain.LineItem) int64 {
	var sum int64
	for i := range items {
		sum += items[i].UnitPrice * int64(items[i].Quantity)
	}
	return sum
}

// Shipping is free once the subtotal reaches the threshold, boundary included.
func Shipping(subtotal int64, cfg Config) int64 {
	if subtotal >= cfg.FreeShippingThreshold {
		return 0
	}
	return cfg.FlatShippingFee
}

func Total(subtotal, shipping, discount int64) int64 {
	return subtotal + shipping - discount
}

// ItemCount is the total number of units, not the number of distinct products.
func ItemCount(items []domain.LineItem) int {
	var n int
	for i := range items {
		n += items[i].Quantity
	}
	return n
}

func DistinctCount(items []domain.LineItem) int {
	return len(items)
}

// Compute assembles the full totals view for a cart. Cart-level discounts do
// not exist; per-item discounts are already baked into the price snapshot.
// An empty cart has nothing to ship, so every figure is zero.
func Compute(items []domain.LineItem, cfg Config) Totals {
	if len(items) == 0 {
		return Totals{Currency: cfg.CurrencyCode}
	}

	subtotal := Subtotal(items)
	shipping := Shipping(subtotal, cfg)
	var discount int64 = 0

	return Totals{
		Subtotal:   subtotal,
		Shipping:   shipping,
		Discount:   discount,
		Total:      Total(subtotal, shipping, discount),
		TotalItems: ItemCount(items),
		Currency:   cfg.CurrencyCode,
	}
}
