package menu

// Item is a priced menu entry. Name is the unique key.
type Item struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
}

// DefaultItems is the menu the service starts with when no other source
// provides one.
func DefaultItems() []Item {
	return []Item{
		{Name: "Veggie Taco", UnitPrice: 2.50},
		{Name: "Chicken Taco", UnitPrice: 3.00},
		{Name: "Beef Taco", UnitPrice: 3.00},
		{Name: "Chorizo Taco", UnitPrice: 3.50},
	}
}
