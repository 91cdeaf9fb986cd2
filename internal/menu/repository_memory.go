package menu

import (
	"context"
	"sort"
	"sync"
)

type InMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]float64
}

func NewInMemoryRepository(seed ...Item) *InMemoryRepository {
	r := &InMemoryRepository{items: make(map[string]float64, len(seed))}
	for _, it := range seed {
		r.items[it.Name] = it.UnitPrice
	}
	return r
}

func (r *InMemoryRepository) List(_ context.Context) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]Item, 0, len(r.items))
	for name, price := range r.items {
		items = append(items, Item{Name: name, UnitPrice: price})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (r *InMemoryRepository) Upsert(_ context.Context, item Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.Name] = item.UnitPrice
	return nil
}

func (r *InMemoryRepository) Delete(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[name]; !ok {
		return ErrItemNotFound
	}
	delete(r.items, name)
	return nil
}
