package menu

import "sort"

// Catalog is the read-only lookup used by order validation and pricing.
type Catalog interface {
	// PriceOf returns the unit price and true when the item is on the menu.
	PriceOf(name string) (float64, bool)
	// Exists reports whether name is a known menu item.
	Exists(name string) bool
}

// Snapshot is an immutable view of the menu at one point in time.
// It is safe for concurrent use.
type Snapshot struct {
	prices map[string]float64
}

var _ Catalog = (*Snapshot)(nil)

func NewSnapshot(items []Item) *Snapshot {
	prices := make(map[string]float64, len(items))
	for _, it := range items {
		prices[it.Name] = it.UnitPrice
	}
	return &Snapshot{prices: prices}
}

func (s *Snapshot) PriceOf(name string) (float64, bool) {
	price, ok := s.prices[name]
	return price, ok
}

func (s *Snapshot) Exists(name string) bool {
	_, ok := s.prices[name]
	return ok
}

func (s *Snapshot) Len() int {
	return len(s.prices)
}

// Items returns a copy of the entries sorted by name.
func (s *Snapshot) Items() []Item {
	items := make([]Item, 0, len(s.prices))
	for name, price := range s.prices {
		items = append(items, Item{Name: name, UnitPrice: price})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}
