package order

import (
	"fmt"
	"math"
	"sort"

	"tacoloco/internal/menu"
)

const (
	// DiscountThreshold is the combined quantity, across all items, at
	// which the bulk discount applies.
	DiscountThreshold = 4
	DiscountPercent   = 20

	discountFactor = (100 - DiscountPercent) / 100.0
)

// Engine prices validated orders.
type Engine struct {
	catalog menu.Catalog
}

func NewEngine(catalog menu.Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// CalculateTotal groups lines by item name, prices each distinct item once
// and applies the bulk discount. Lines must already be validated; an item
// without a price yields ErrPriceNotFound.
//
// The result is not rounded.
func (e *Engine) CalculateTotal(lines []OrderLine) (float64, error) {
	quantities := make(map[string]int, len(lines))
	for _, line := range lines {
		sum, ok := addQuantity(quantities[line.ItemName], line.Quantity)
		if !ok {
			return 0, fmt.Errorf("%w: quantity of %q", ErrTotalOutOfRange, line.ItemName)
		}
		quantities[line.ItemName] = sum
	}

	// sorted so float accumulation does not depend on input order
	names := make([]string, 0, len(quantities))
	for name := range quantities {
		names = append(names, name)
	}
	sort.Strings(names)

	var (
		subtotal      float64
		totalQuantity int
	)
	for _, name := range names {
		qty := quantities[name]

		price, ok := e.catalog.PriceOf(name)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrPriceNotFound, name)
		}

		sum, ok := addQuantity(totalQuantity, qty)
		if !ok {
			return 0, fmt.Errorf("%w: total quantity", ErrTotalOutOfRange)
		}
		totalQuantity = sum
		subtotal += float64(qty) * price
	}

	total := subtotal
	if totalQuantity >= DiscountThreshold {
		total = subtotal * discountFactor
	}

	if math.IsInf(total, 0) || math.IsNaN(total) {
		return 0, fmt.Errorf("%w: %v", ErrTotalOutOfRange, total)
	}
	return total, nil
}

// addQuantity adds two non-negative quantities, reporting false on overflow.
func addQuantity(a, b int) (int, bool) {
	if b < 0 || a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}
