package menu

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// Cache is a read-through cache over a Repository. The first Snapshot call
// loads the whole menu; writes made through the cache drop the snapshot so
// the next read reloads it.
//
// Published snapshots are never mutated, so readers need no lock.
type Cache struct {
	repo Repository

	mu      sync.Mutex // serialises loads and writes
	current atomic.Pointer[Snapshot]
}

func NewCache(repo Repository) *Cache {
	return &Cache{repo: repo}
}

func (c *Cache) Snapshot(ctx context.Context) (*Snapshot, error) {
	if s := c.current.Load(); s != nil {
		return s, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if s := c.current.Load(); s != nil {
		return s, nil
	}

	items, err := c.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}

	s := NewSnapshot(items)
	c.current.Store(s)
	return s, nil
}

func (c *Cache) Upsert(ctx context.Context, item Item) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.repo.Upsert(ctx, item); err != nil {
		return err
	}
	c.current.Store(nil)
	return nil
}

func (c *Cache) Delete(ctx context.Context, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.repo.Delete(ctx, name); err != nil {
		return err
	}
	c.current.Store(nil)
	return nil
}

// Invalidate drops the cached snapshot. Use it after the repository was
// written outside this cache. It waits for an in-flight load so that load
// cannot republish what was read before the call.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current.Store(nil)
}
