package menu

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// MaxUnitPrice is the largest price the menu_items column can hold.
	MaxUnitPrice = 99999999.99

	priceScale = 2
)

var ErrInvalidItem = errors.New("invalid menu item")

// ValidateItem checks an item before it is written to the menu. Prices are
// whole cents so every store holds them exactly.
func ValidateItem(item Item) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: name must not be blank", ErrInvalidItem)
	}

	if math.IsNaN(item.UnitPrice) || math.IsInf(item.UnitPrice, 0) {
		return fmt.Errorf("%w: unit price must be a finite number", ErrInvalidItem)
	}

	if item.UnitPrice < 0 {
		return fmt.Errorf("%w: unit price must not be negative", ErrInvalidItem)
	}

	if item.UnitPrice > MaxUnitPrice {
		return fmt.Errorf("%w: unit price must not exceed %.2f", ErrInvalidItem, MaxUnitPrice)
	}

	price := decimal.NewFromFloat(item.UnitPrice)
	if !price.Equal(price.Round(priceScale)) {
		return fmt.Errorf("%w: unit price must have at most %d decimal places", ErrInvalidItem, priceScale)
	}

	return nil
}
