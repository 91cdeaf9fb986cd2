package order

import (
	"fmt"
	"strings"

	"tacoloco/internal/menu"
)

const (
	MinQuantity = 1
	MaxQuantity = 1000

	ordersField = "calculateTotal.orders"

	MsgNotEmpty        = "must not be empty"
	MsgNotBlank        = "must not be blank"
	MsgInvalidItemName = "The item name is not a valid menu item"
)

var (
	msgMinQuantity = fmt.Sprintf("must be greater than or equal to %d", MinQuantity)
	msgMaxQuantity = fmt.Sprintf("must be less than or equal to %d", MaxQuantity)
)

// Validator checks submitted order lines against a menu catalog.
type Validator struct {
	catalog menu.Catalog
}

func NewValidator(catalog menu.Catalog) *Validator {
	return &Validator{catalog: catalog}
}

// IsValidItemName reports whether name is on the menu.
func (v *Validator) IsValidItemName(name string) bool {
	return v.catalog.Exists(name)
}

// Validate runs every rule over every line and returns a *ValidationError
// holding all violations, or nil. Item name rules run before quantity rules.
func (v *Validator) Validate(lines []OrderLine) error {
	var violations []Violation

	if len(lines) == 0 {
		violations = append(violations, Violation{Field: ordersField, Value: "[]", Message: MsgNotEmpty})
	}

	for i, line := range lines {
		field := fmt.Sprintf("%s[%d].itemName", ordersField, i)

		if strings.TrimSpace(line.ItemName) == "" {
			violations = append(violations, Violation{Field: field, Value: line.ItemName, Message: MsgNotBlank})
		}
		if !v.IsValidItemName(line.ItemName) {
			violations = append(violations, Violation{Field: field, Value: line.ItemName, Message: MsgInvalidItemName})
		}
	}

	for i, line := range lines {
		field := fmt.Sprintf("%s[%d].quantity", ordersField, i)

		switch {
		case line.Quantity < MinQuantity:
			violations = append(violations, Violation{Field: field, Value: line.Quantity, Message: msgMinQuantity})
		case line.Quantity > MaxQuantity:
			violations = append(violations, Violation{Field: field, Value: line.Quantity, Message: msgMaxQuantity})
		}
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
