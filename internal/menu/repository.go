package menu

import (
	"context"
	"errors"
)

var ErrItemNotFound = errors.New("menu item not found")

// Repository is the source of truth for menu items.
// Reads normally go through Cache, never straight to a Repository.
type Repository interface {
	List(ctx context.Context) ([]Item, error)

	// Upsert creates the item or replaces its price.
	Upsert(ctx context.Context, item Item) error

	// Delete returns ErrItemNotFound when no row matched.
	Delete(ctx context.Context, name string) error
}
