package menu

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const seedVersion = "v1"

var ErrInvalidSeed = errors.New("invalid menu seed")

// SeedDocument is the JSON layout of a menu stored in object storage.
type SeedDocument struct {
	Version    string    `json:"version"`
	ExportedAt time.Time `json:"exported_at,omitempty"`
	Items      []Item    `json:"items"`
}

func DecodeSeed(data []byte) ([]Item, error) {
	var doc SeedDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}

	if doc.Version != "" && doc.Version != seedVersion {
		return nil, fmt.Errorf("%w: unsupported version %q", ErrInvalidSeed, doc.Version)
	}

	seen := make(map[string]struct{}, len(doc.Items))
	for i, it := range doc.Items {
		if err := ValidateItem(it); err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrInvalidSeed, i, err)
		}
		if _, dup := seen[it.Name]; dup {
			return nil, fmt.Errorf("%w: item %d: duplicate name %q", ErrInvalidSeed, i, it.Name)
		}
		seen[it.Name] = struct{}{}
	}

	return doc.Items, nil
}

func EncodeSeed(items []Item, now time.Time) ([]byte, error) {
	return json.MarshalIndent(SeedDocument{
		Version:    seedVersion,
		ExportedAt: now.UTC(),
		Items:      items,
	}, "", "  ")
}
