package menu

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"time"
)

var ErrStorageDisabled = errors.New("menu object storage is not configured")

// ObjectStore reads and writes menu seed documents.
type ObjectStore interface {
	Download(ctx context.Context, key string) ([]byte, error)
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Service struct {
	cache   *Cache
	objects ObjectStore
	seedKey string
	logger  *slog.Logger
	now     func() time.Time
}

// NewService wires the menu cache with optional object storage; objects may
// be nil, in which case import and export return ErrStorageDisabled.
func NewService(cache *Cache, objects ObjectStore, seedKey string, logger *slog.Logger) *Service {
	return &Service{
		cache:   cache,
		objects: objects,
		seedKey: seedKey,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	return s.cache.Snapshot(ctx)
}

// Catalog returns the current snapshot as a Catalog.
func (s *Service) Catalog(ctx context.Context) (Catalog, error) {
	snap, err := s.cache.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *Service) ListItems(ctx context.Context) ([]Item, error) {
	snap, err := s.cache.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Items(), nil
}

// --------------------------------------------------
// Admin writes (invalidate the cache)
// --------------------------------------------------
func (s *Service) UpsertItem(ctx context.Context, item Item) error {
	if err := ValidateItem(item); err != nil {
		return err
	}

	if err := s.cache.Upsert(ctx, item); err != nil {
		return err
	}

	s.logger.Info("menu_item_upserted", "name", item.Name, "unit_price", item.UnitPrice)
	return nil
}

func (s *Service) DeleteItem(ctx context.Context, name string) error {
	if err := s.cache.Delete(ctx, name); err != nil {
		return err
	}

	s.logger.Info("menu_item_deleted", "name", name)
	return nil
}

// Reload drops the cached menu and reads it again from the store, picking up
// rows written by other instances.
func (s *Service) Reload(ctx context.Context) (int, error) {
	s.cache.Invalidate()

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return 0, err
	}

	s.logger.Info("menu_reloaded", "items", snap.Len())
	return snap.Len(), nil
}

// --------------------------------------------------
// Object storage import / export
// --------------------------------------------------

// ImportSeed downloads the seed document and upserts every item in it.
func (s *Service) ImportSeed(ctx context.Context) (int, error) {
	if s.objects == nil || s.seedKey == "" {
		return 0, ErrStorageDisabled
	}

	data, err := s.objects.Download(ctx, s.seedKey)
	if err != nil {
		return 0, err
	}

	items, err := DecodeSeed(data)
	if err != nil {
		return 0, err
	}

	for _, it := range items {
		if err := s.cache.Upsert(ctx, it); err != nil {
			return 0, err
		}
	}

	s.logger.Info("menu_seed_imported", "key", s.seedKey, "items", len(items))
	return len(items), nil
}

// ExportSnapshot writes the current menu to the seed key and returns its URL.
func (s *Service) ExportSnapshot(ctx context.Context) (string, error) {
	if s.objects == nil || s.seedKey == "" {
		return "", ErrStorageDisabled
	}

	snap, err := s.cache.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	data, err := EncodeSeed(snap.Items(), s.now())
	if err != nil {
		return "", err
	}

	url, err := s.objects.Upload(ctx, s.seedKey, bytes.NewReader(data), "application/json")
	if err != nil {
		return "", err
	}

	s.logger.Info("menu_snapshot_exported", "key", s.seedKey, "items", snap.Len())
	return url, nil
}
