package order

import (
	"context"

	"tacoloco/internal/menu"

	"github.com/stretchr/testify/mock"
)

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) PriceOf(name string) (float64, bool) {
	args := m.Called(name)
	return args.Get(0).(float64), args.Bool(1)
}

func (m *MockCatalog) Exists(name string) bool {
	return m.Called(name).Bool(0)
}

// staticSource always hands out the same catalog.
type staticSource struct {
	catalog menu.Catalog
	err     error
}

func (s staticSource) Catalog(context.Context) (menu.Catalog, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.catalog, nil
}

func tacoCatalog() *menu.Snapshot {
	return menu.NewSnapshot([]menu.Item{
		{Name: "Veggie Taco", UnitPrice: 3.50},
		{Name: "Chicken Taco", UnitPrice: 3.50},
		{Name: "Beef Taco", UnitPrice: 3.00},
		{Name: "Chorizo Taco", UnitPrice: 3.50},
	})
}
