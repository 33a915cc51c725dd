// Package alerts derives stock alert state from the product collection. The
// evaluator is a pure function over a product slice so callers can point it
// at any consistent read of the store.
package alerts

import (
	"sort"

	"github.com/google/uuid"

	"github.com/ponabinanth/inventory-service/pkg/inventory"
)

const (
	// LowStockThreshold is the quantity below which a product counts as low
	// stock. Out-of-stock products (quantity zero) are included.
	LowStockThreshold = 5

	// MaxLowStockItems caps the projected item list in a Summary.
	MaxLowStockItems = 10
)

// Item is the low-stock projection of a product carried in a Summary.
type Item struct {
	ID       uuid.UUID `json:"id"`
	SKU      string    `json:"sku"`
	Name     string    `json:"name"`
	Quantity int       `json:"quantity"`
	Supplier string    `json:"supplier"`
}

// Summary is the result of one evaluation pass over the product collection.
type Summary struct {
	LowStockCount   int    `json:"low_stock_count"`
	OutOfStockCount int    `json:"out_of_stock_count"`
	LowStock        []Item `json:"low_stock"`
}

// Evaluate computes alert state for the given products. The projection is
// ordered by ascending quantity, then SKU, and capped at MaxLowStockItems;
// the counters always cover the whole collection.
func Evaluate(products []inventory.Product) Summary {
	summary := Summary{LowStock: []Item{}}

	for _, p := range products {
		if p.Quantity == 0 {
			summary.OutOfStockCount++
		}
		if p.Quantity < LowStockThreshold {
			summary.LowStockCount++
			summary.LowStock = append(summary.LowStock, Item{
				ID:       p.ID,
				SKU:      p.SKU,
				Name:     p.Name,
				Quantity: p.Quantity,
				Supplier: p.Supplier,
			})
		}
	}

	sort.Slice(summary.LowStock, func(i, j int) bool {
		a, b := summary.LowStock[i], summary.LowStock[j]
		if a.Quantity != b.Quantity {
			return a.Quantity < b.Quantity
		}
		return a.SKU < b.SKU
	})

	if len(summary.LowStock) > MaxLowStockItems {
		summary.LowStock = summary.LowStock[:MaxLowStockItems]
	}

	return summary
}
