package blob

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"visitordesk/internal/blobstore"
	"visitordesk/internal/domain"
)

type savedHostRepository struct {
	store  blobstore.Store
	logger *slog.Logger

	mu    sync.RWMutex
	hosts []domain.SavedHost
}

// NewSavedHostRepository hydrates the saved-host collection from the store.
// It understands the legacy representation where the document was a plain
// array of name strings; such entries are wrapped with generated ids.
func NewSavedHostRepository(ctx context.Context, store blobstore.Store, logger *slog.Logger) domain.SavedHostRepository {
	return &savedHostRepository{
		store:  store,
		logger: logger,
		hosts:  loadSavedHosts(ctx, store, logger),
	}
}

func loadSavedHosts(ctx context.Context, store blobstore.Store, logger *slog.Logger) []domain.SavedHost {
	raw, err := store.Load(ctx, blobstore.KeySavedHosts)
	if errors.Is(err, blobstore.ErrNotExist) {
		return nil
	}
	if err != nil {
		logger.Warn("loading stored collection failed, starting empty", "key", blobstore.KeySavedHosts, "err", err)
		return nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		logger.Warn("stored collection is corrupt, starting empty", "key", blobstore.KeySavedHosts, "err", err)
		return nil
	}

	hosts := make([]domain.SavedHost, 0, len(entries))
	for _, entry := range entries {
		var h domain.SavedHost
		if err := json.Unmarshal(entry, &h); err == nil && h.Name != "" {
			if h.ID == "" {
				h.ID = uuid.NewString()
			}
			hosts = append(hosts, h)
			continue
		}
		var name string
		if err := json.Unmarshal(entry, &name); err == nil && name != "" {
			hosts = append(hosts, domain.SavedHost{ID: uuid.NewString(), Name: name})
			continue
		}
		logger.Warn("skipping unreadable saved host entry", "entry", string(entry))
	}
	return hosts
}

func (r *savedHostRepository) List(_ context.Context) ([]*domain.SavedHost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.SavedHost, 0, len(r.hosts))
	for i := range r.hosts {
		h := r.hosts[i]
		out = append(out, &h)
	}
	return out, nil
}

func (r *savedHostRepository) Append(ctx context.Context, h *domain.SavedHost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hosts = append(r.hosts, *h)
	return saveCollection(ctx, r.store, blobstore.KeySavedHosts, r.hosts)
}

func (r *savedHostRepository) Update(ctx context.Context, h *domain.SavedHost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.hosts {
		if r.hosts[i].ID == h.ID {
			r.hosts[i] = *h
			return saveCollection(ctx, r.store, blobstore.KeySavedHosts, r.hosts)
		}
	}
	return domain.ErrNotFound
}

func (r *savedHostRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.hosts {
		if r.hosts[i].ID == id {
			r.hosts = append(r.hosts[:i], r.hosts[i+1:]...)
			return saveCollection(ctx, r.store, blobstore.KeySavedHosts, r.hosts)
		}
	}
	return domain.ErrNotFound
}
