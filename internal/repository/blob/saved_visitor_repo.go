package blob

import (
	"context"
	"log/slog"
	"sync"

	"visitordesk/internal/blobstore"
	"visitordesk/internal/domain"
)

type savedVisitorRepository struct {
	store  blobstore.Store
	logger *slog.Logger

	mu       sync.RWMutex
	visitors []domain.SavedVisitor
}

// NewSavedVisitorRepository hydrates the saved-visitor collection from the store.
func NewSavedVisitorRepository(ctx context.Context, store blobstore.Store, logger *slog.Logger) domain.SavedVisitorRepository {
	return &savedVisitorRepository{
		store:    store,
		logger:   logger,
		visitors: loadCollection[domain.SavedVisitor](ctx, store, blobstore.KeySavedVisitors, logger),
	}
}

func (r *savedVisitorRepository) List(_ context.Context) ([]*domain.SavedVisitor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.SavedVisitor, 0, len(r.visitors))
	for i := range r.visitors {
		v := r.visitors[i]
		out = append(out, &v)
	}
	return out, nil
}

func (r *savedVisitorRepository) Append(ctx context.Context, v *domain.SavedVisitor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visitors = append(r.visitors, *v)
	return saveCollection(ctx, r.store, blobstore.KeySavedVisitors, r.visitors)
}

func (r *savedVisitorRepository) Update(ctx context.Context, v *domain.SavedVisitor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.visitors {
		if r.visitors[i].ID == v.ID {
			r.visitors[i] = *v
			return saveCollection(ctx, r.store, blobstore.KeySavedVisitors, r.visitors)
		}
	}
	return domain.ErrNotFound
}

func (r *savedVisitorRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.visitors {
		if r.visitors[i].ID == id {
			r.visitors = append(r.visitors[:i], r.visitors[i+1:]...)
			return saveCollection(ctx, r.store, blobstore.KeySavedVisitors, r.visitors)
		}
	}
	return domain.ErrNotFound
}
