// Package blob implements the entity repositories as in-memory collections
// mirrored whole-collection-at-a-time to a blobstore.Store. Each repository
// hydrates once at construction; a missing or corrupt document yields an
// empty collection and a warning, never an error.
package blob

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"visitordesk/internal/blobstore"
)

// loadCollection reads and decodes the document under key. Absence and
// corruption both degrade to an empty collection; only absence is silent.
func loadCollection[T any](ctx context.Context, store blobstore.Store, key string, logger *slog.Logger) []T {
	raw, err := store.Load(ctx, key)
	if errors.Is(err, blobstore.ErrNotExist) {
		return nil
	}
	if err != nil {
		logger.Warn("loading stored collection failed, starting empty", "key", key, "err", err)
		return nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		logger.Warn("stored collection is corrupt, starting empty", "key", key, "err", err)
		return nil
	}
	return items
}

// saveCollection encodes and persists the full collection under key.
func saveCollection[T any](ctx context.Context, store blobstore.Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}
