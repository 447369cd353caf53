// Package basket implements the session-held shopping basket as a plain
// value: an ordered list of product ids where each occurrence counts as
// quantity one. All operations are pure; loading and persisting the value is
// the web layer's problem.
package basket

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/webshop-go/storefront-api/models"
)

// Basket is a sequence of product id references. Duplicates are meaningful.
type Basket []uint

// Add appends one reference. The caller must have verified the product
// exists and is purchasable; Add itself accepts anything.
func (b Basket) Add(productID uint) Basket {
	return append(b, productID)
}

// Remove drops the first matching reference only. A product added three
// times and removed once keeps two references. No-op when absent.
func (b Basket) Remove(productID uint) Basket {
	for i, id := range b {
		if id == productID {
			return append(b[:i:i], b[i+1:]...)
		}
	}
	return b
}

// Aggregate groups the references into product id -> quantity.
func (b Basket) Aggregate() map[uint]int {
	totals := make(map[uint]int, len(b))
	for _, id := range b {
		totals[id]++
	}
	return totals
}

// Count is the number of references held, duplicates included.
func (b Basket) Count() int { return len(b) }

func (b Basket) IsEmpty() bool { return len(b) == 0 }

// ProductGetter resolves a product id to a purchasable product, returning a
// not-found error when the id is unknown or the product was soft-deleted.
type ProductGetter interface {
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
}

// Line is one aggregated basket entry priced at current catalog prices.
type Line struct {
	Product  models.Product  `json:"product"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

// Totals prices every aggregated entry with a live product lookup and sums
// the grand total. Lines come back in first-added order. Any failed lookup
// aborts the whole computation; there is no partial basket.
func (b Basket) Totals(ctx context.Context, products ProductGetter) ([]Line, decimal.Decimal, error) {
	quantities := b.Aggregate()
	grandTotal := decimal.Zero

	lines := make([]Line, 0, len(quantities))
	seen := make(map[uint]bool, len(quantities))
	for _, id := range b {
		if seen[id] {
			continue
		}
		seen[id] = true

		product, err := products.GetProduct(ctx, id)
		if err != nil {
			return nil, decimal.Zero, err
		}

		qty := quantities[id]
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(qty)))
		grandTotal = grandTotal.Add(lineTotal)
		lines = append(lines, Line{Product: *product, Quantity: qty, Total: lineTotal})
	}
	return lines, grandTotal, nil
}
